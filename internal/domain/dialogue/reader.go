package dialogue

// Reader walks the entries of one scene
type Reader struct {
	label   string
	entries []Entry
	index   int
}

// NewReader creates a reader positioned at the first entry
func NewReader(label string, entries []Entry) *Reader {
	return &Reader{label: label, entries: entries}
}

// Label returns the scene label
func (r *Reader) Label() string { return r.label }

// Current returns the entry under the cursor; ok is false once exhausted
func (r *Reader) Current() (Entry, bool) {
	if r.IsEmpty() {
		return Entry{}, false
	}
	return r.entries[r.index], true
}

// Next advances to the following entry
func (r *Reader) Next() {
	if !r.IsEmpty() {
		r.index++
	}
}

// IsEmpty reports whether every entry has been consumed
func (r *Reader) IsEmpty() bool { return r.index >= len(r.entries) }

// Remaining returns the number of entries left, current included
func (r *Reader) Remaining() int { return len(r.entries) - r.index }
