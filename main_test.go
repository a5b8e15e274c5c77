package main

import (
	"flag"
	"testing"

	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/hajimehoshi/ebiten/v2"
)

type closingScene struct {
	closed int
}

func (s *closingScene) Update()              {}
func (s *closingScene) Draw(_ *ebiten.Image) {}
func (s *closingScene) Close()               { s.closed++ }

type plainScene struct{}

func (plainScene) Update()              {}
func (plainScene) Draw(_ *ebiten.Image) {}

func TestChangeScene_ClosesOldScene(t *testing.T) {
	old, next := &closingScene{}, &closingScene{}
	g := &Game{scene: old}

	g.ChangeScene(next)
	if old.closed != 1 {
		t.Errorf("old scene closed %d times, want 1", old.closed)
	}
	if next.closed != 0 {
		t.Errorf("new scene closed %d times, want 0", next.closed)
	}
	if g.scene != next {
		t.Errorf("scene was not replaced")
	}
}

func TestChangeScene_SameSceneStaysOpen(t *testing.T) {
	s := &closingScene{}
	g := &Game{scene: s}

	g.ChangeScene(s)
	if s.closed != 0 {
		t.Fatalf("re-entering the current scene closed it")
	}
}

func TestChangeScene_FromSceneWithoutClose(t *testing.T) {
	next := &closingScene{}
	g := &Game{scene: plainScene{}}

	g.ChangeScene(next)
	if g.scene != next {
		t.Fatalf("scene was not replaced")
	}
}

func TestApplyFlag_ClampsOnlyGivenValues(t *testing.T) {
	fs := flag.NewFlagSet("walkabout", flag.ContinueOnError)
	fs.Float64("speed", 25, "")
	fs.Bool("look", false, "")
	fs.Float64("lookspeed", 2, "")
	fs.String("tuning", "", "")
	if err := fs.Parse([]string{"-speed=-3", "-look", "-lookspeed=50", "-tuning=arena.yaml"}); err != nil {
		t.Fatal(err)
	}

	base := locomotion.DefaultSettings()
	got := base
	fs.Visit(func(f *flag.Flag) {
		got = applyFlag(got, f)
	})

	want := base
	want.Speed = 0
	want.LookEnabled = true
	want.LookSpeed = locomotion.Ranges.LookSpeed.Max
	if got != want {
		t.Fatalf("settings = %+v, want %+v", got, want)
	}
}

func TestApplyFlag_NoFlagsKeepsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("walkabout", flag.ContinueOnError)
	fs.Float64("speed", 25, "")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	got := locomotion.DefaultSettings()
	fs.Visit(func(f *flag.Flag) {
		got = applyFlag(got, f)
	})
	if got.RunningSpeed != 11.5 {
		t.Fatalf("RunningSpeed = %v, want 11.5", got.RunningSpeed)
	}
}
