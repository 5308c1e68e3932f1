package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/lustrous/internal/domain/entity"
)

// InputState is one frame's keyboard and mouse snapshot
type InputState struct {
	// Held movement keys
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Just pressed this frame
	MenuUp         bool
	MenuDown       bool
	Confirm        bool // Enter
	Pause          bool // Escape
	ToggleDebug    bool // F1
	ToggleDialogue bool // F2
	ReturnToTitle  bool // F3

	MouseX     int
	MouseY     int
	MouseClick bool
}

// Direction combines the held movement keys into one of eight directions.
// Opposite keys cancel out.
func (in InputState) Direction() entity.Direction {
	dx, dy := 0.0, 0.0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return entity.DirectionFromDelta(dx, dy)
}

// InputSource supplies one snapshot per frame.
// ok is false once the source has nothing more to give.
type InputSource interface {
	Poll() (in InputState, ok bool)
}

// InputSystem reads the live keyboard and mouse
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:           anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:          anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:             anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:           anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		MenuUp:         anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		MenuDown:       anyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Confirm:        anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Pause:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleDebug:    inpututil.IsKeyJustPressed(ebiten.KeyF1),
		ToggleDialogue: inpututil.IsKeyJustPressed(ebiten.KeyF2),
		ReturnToTitle:  inpututil.IsKeyJustPressed(ebiten.KeyF3),
		MouseX:         mx,
		MouseY:         my,
		MouseClick:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Poll implements InputSource; live input never runs out
func (s *InputSystem) Poll() (InputState, bool) {
	return s.GetInput(), true
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
