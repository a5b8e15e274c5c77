package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HintData fades the cursor capture hint in and out.
type HintData struct {
	Tween *gween.Tween
	Alpha float32
	Shown bool // target state the tween is heading to
}

var Hint = donburi.NewComponentType[HintData]()
