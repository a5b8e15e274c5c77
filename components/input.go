package components

import (
	cfg "github.com/automoto/walkabout/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	CursorX         int
	CursorY         int
	LookX           float64 // scaled cursor delta since last frame
	LookY           float64
	LastInputMethod InputMethod // Most recently used input method
	cursorSeen      bool
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Advance swaps the frame buffers: current becomes previous and current is
// cleared.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

// TrackCursor records a new cursor position and sets the look delta, scaled
// by scale. The first position seen yields no delta.
func (in *InputData) TrackCursor(x, y int, scale float64) {
	if in.cursorSeen {
		in.LookX = float64(x-in.CursorX) * scale
		in.LookY = float64(y-in.CursorY) * scale
	} else {
		in.LookX, in.LookY = 0, 0
	}
	in.CursorX, in.CursorY = x, y
	in.cursorSeen = true
}
