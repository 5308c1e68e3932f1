package dialogue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ErrSceneNotFound is returned when a label has no scene in the script
var ErrSceneNotFound = errors.New("scene not found")

// Entry is one line of dialogue
type Entry struct {
	Speaker string
	Text    string
}

// Script holds every labelled scene of a dialogue file.
//
// File format:
//
//	# comment
//	[Intro]
//	Warren: Hello there.
//	The wind howls.            <- no speaker
//	Warren: First line\nsecond line
//
// A literal \n inside a message is an explicit line break.
type Script struct {
	scenes map[string][]Entry
	labels []string
}

// Parse reads a script from r
func Parse(r io.Reader) (*Script, error) {
	s := &Script{scenes: make(map[string][]Entry)}
	current := ""

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated label %q", lineNo, line)
			}
			label := strings.TrimSpace(line[1 : len(line)-1])
			if label == "" {
				return nil, fmt.Errorf("line %d: empty label", lineNo)
			}
			if _, dup := s.scenes[label]; dup {
				return nil, fmt.Errorf("line %d: duplicate label %q", lineNo, label)
			}
			s.scenes[label] = nil
			s.labels = append(s.labels, label)
			current = label
			continue
		}

		if current == "" {
			return nil, fmt.Errorf("line %d: dialogue before any label", lineNo)
		}
		s.scenes[current] = append(s.scenes[current], parseEntry(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return s, nil
}

// LoadFile parses the script at name in fsys
func LoadFile(fsys fs.FS, name string) (*Script, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open script %s: %w", name, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse script %s: %w", name, err)
	}
	return s, nil
}

func parseEntry(line string) Entry {
	var e Entry
	if i := strings.Index(line, ":"); i > 0 && !strings.ContainsAny(line[:i], " \t") {
		e.Speaker = line[:i]
		line = strings.TrimSpace(line[i+1:])
	}
	e.Text = strings.ReplaceAll(line, `\n`, "\n")
	return e
}

// Labels returns the scene labels in file order
func (s *Script) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Scene returns the entries of label in order
func (s *Script) Scene(label string) ([]Entry, error) {
	entries, ok := s.scenes[label]
	if !ok {
		return nil, fmt.Errorf("%q: %w", label, ErrSceneNotFound)
	}
	return entries, nil
}

// Reader starts a fresh reader at the first entry of label
func (s *Script) Reader(label string) (*Reader, error) {
	entries, err := s.Scene(label)
	if err != nil {
		return nil, err
	}
	return NewReader(label, entries), nil
}
