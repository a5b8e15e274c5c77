package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SpeedStep is how much one click of the speed buttons changes Speed.
const SpeedStep = 5.0

// TuningUI is a small panel for adjusting the live movement controller.
type TuningUI struct {
	UI         *ebitenui.UI
	Controller *locomotion.Controller

	// Called with the controller's settings when Save is clicked. The
	// returned error is shown in the status line.
	OnSave func(locomotion.Settings) error

	// Widget references for updates
	speedLabel  *widget.Label
	lookButton  *widget.Button
	statusLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewTuningUI creates the tuning panel for ctrl.
func NewTuningUI(ctrl *locomotion.Controller, onSave func(locomotion.Settings) error) *TuningUI {
	tui := &TuningUI{
		Controller: ctrl,
		OnSave:     onSave,
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (tui *TuningUI) buildUI() {
	// Transparent root so the world shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(tui.buildSpeedRow())

	tui.lookButton = tui.newButton(lookLabel(tui.Controller.Settings().LookEnabled), 110, func() {
		s := tui.Controller.Settings()
		s.LookEnabled = !s.LookEnabled
		tui.Controller.SetSettings(s)
		tui.UpdateUI()
	})
	panel.AddChild(tui.lookButton)

	panel.AddChild(tui.newButton("Save", 110, func() {
		tui.save()
	}))

	tui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{100, 255, 100, 255},
		}),
	)
	panel.AddChild(tui.statusLabel)

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TuningUI) buildSpeedRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.AddChild(tui.newButton("-", 20, func() {
		tui.Controller.SetSpeed(NudgeSpeed(tui.Controller.Settings().Speed, -SpeedStep))
		tui.UpdateUI()
	}))

	tui.speedLabel = widget.NewLabel(
		widget.LabelOpts.Text(speedLabel(tui.Controller.Settings().Speed), &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(tui.speedLabel)

	row.AddChild(tui.newButton("+", 20, func() {
		tui.Controller.SetSpeed(NudgeSpeed(tui.Controller.Settings().Speed, SpeedStep))
		tui.UpdateUI()
	}))

	return row
}

func (tui *TuningUI) newButton(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, 18),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (tui *TuningUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the labels from the controller's settings
func (tui *TuningUI) UpdateUI() {
	s := tui.Controller.Settings()
	if tui.speedLabel != nil {
		tui.speedLabel.Label = speedLabel(s.Speed)
	}
	if tui.lookButton != nil {
		if textWidget := tui.lookButton.Text(); textWidget != nil {
			textWidget.Label = lookLabel(s.LookEnabled)
		}
	}
}

// Update calls the UI's Update method
func (tui *TuningUI) Update() {
	tui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !tui.initialized {
		tui.initialized = true
		tui.UpdateUI()
	}
}

// save hands the current settings to OnSave and reports the outcome in the
// status line.
func (tui *TuningUI) save() string {
	var err error
	if tui.OnSave == nil {
		err = errNoSaveHandler
	} else {
		err = tui.OnSave(tui.Controller.Settings())
	}
	status := saveStatus(err)
	if tui.statusLabel != nil {
		tui.statusLabel.Label = status
	}
	return status
}

var errNoSaveHandler = errors.New("nowhere to save")

func saveStatus(err error) string {
	if err != nil {
		return "not saved: " + err.Error()
	}
	return "saved"
}

// NudgeSpeed adds delta to speed without going below zero.
func NudgeSpeed(speed, delta float64) float64 {
	speed += delta
	if speed < 0 {
		return 0
	}
	return speed
}

func speedLabel(speed float64) string {
	return fmt.Sprintf("speed %.0f", speed)
}

func lookLabel(enabled bool) string {
	if enabled {
		return "Mouse look: on"
	}
	return "Mouse look: off"
}
