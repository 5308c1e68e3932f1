// Package replay records per-frame input snapshots and plays them back.
package replay

import "github.com/younwookim/lustrous/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	MU  bool `json:"mu,omitempty"`  // MenuUp
	MD  bool `json:"md,omitempty"`  // MenuDown
	C   bool `json:"c,omitempty"`   // Confirm
	P   bool `json:"p,omitempty"`   // Pause
	Dbg bool `json:"dbg,omitempty"` // ToggleDebug
	Dlg bool `json:"dlg,omitempty"` // ToggleDialogue
	T   bool `json:"t,omitempty"`   // ReturnToTitle
	MX  int  `json:"mx"`            // MouseX
	MY  int  `json:"my"`            // MouseY
	MC  bool `json:"mc,omitempty"`  // MouseClick
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Map       string       `json:"map"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput packs one frame's snapshot
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		L:   in.Left,
		R:   in.Right,
		U:   in.Up,
		D:   in.Down,
		MU:  in.MenuUp,
		MD:  in.MenuDown,
		C:   in.Confirm,
		P:   in.Pause,
		Dbg: in.ToggleDebug,
		Dlg: in.ToggleDialogue,
		T:   in.ReturnToTitle,
		MX:  in.MouseX,
		MY:  in.MouseY,
		MC:  in.MouseClick,
	}
}

// Input unpacks the recorded snapshot
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		Up:             fi.U,
		Down:           fi.D,
		MenuUp:         fi.MU,
		MenuDown:       fi.MD,
		Confirm:        fi.C,
		Pause:          fi.P,
		ToggleDebug:    fi.Dbg,
		ToggleDialogue: fi.Dlg,
		ReturnToTitle:  fi.T,
		MouseX:         fi.MX,
		MouseY:         fi.MY,
		MouseClick:     fi.MC,
	}
}
