package systems

import (
	uiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenCursor captures and frees the OS cursor through ebiten's cursor
// mode. Captured hides the pointer and locks it to the window.
type EbitenCursor struct{}

func (EbitenCursor) Lock() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

func (EbitenCursor) Unlock() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// PointerOverUI reports whether the pointer was over an ebitenui widget on
// the last UI update.
func PointerOverUI() bool {
	return uiinput.UIHovered
}
