package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/walkabout/config"
	"github.com/automoto/walkabout/fonts"
	"github.com/automoto/walkabout/scenes"
	"github.com/automoto/walkabout/systems"
	"github.com/automoto/walkabout/shared/locomotion"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "walkabout"

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene, closing the old one first
func (g *Game) ChangeScene(scene scenes.Scene) {
	if old, ok := g.scene.(scenes.Closer); ok && g.scene != scene {
		old.Close()
	}
	g.scene = scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "Show collision outlines and controller state")
	flag.Float64("speed", config.Movement.Speed, "Impulse magnitude per second of held input")
	flag.Bool("look", config.Movement.LookEnabled, "Enable mouse look")
	flag.Float64("lookspeed", config.Movement.LookSpeed, "Mouse look sensitivity")
	dupe := flag.Bool("dupe", false, "Try to spawn a second controller at startup")
	noSave := flag.Bool("nosave", false, "Don't load or save movement tuning")
	tuningPath := flag.String("tuning", "", "YAML file with movement tuning")
	flag.Parse()

	config.Debug.Overlay = *debug
	config.Debug.SpawnDuplicate = *dupe
	config.Debug.SkipPersistence = *noSave

	// Initialize persistence and load saved tuning
	if !config.Debug.SkipPersistence {
		if err := systems.InitPersistence(appName); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if saved, err := systems.LoadTuning(); err == nil && saved != nil {
			config.Movement = systems.ApplyTuning(config.Movement, saved)
		}
	}

	if *tuningPath != "" {
		s, err := config.LoadTuningFile(*tuningPath, config.Movement)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Movement = s
	}

	// Flags given on the command line win over saved and file tuning
	flag.Visit(func(f *flag.Flag) {
		config.Movement = applyFlag(config.Movement, f)
	})
	logSettings(config.Movement)

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Walkabout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

// applyFlag overlays one command line flag on s. Only the value it sets is
// clamped; flags that are not movement tunables leave s alone.
func applyFlag(s locomotion.Settings, f *flag.Flag) locomotion.Settings {
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		return s
	}
	switch f.Name {
	case "speed":
		if v, ok := getter.Get().(float64); ok {
			s.Speed = locomotion.Ranges.Speed.Clamp(v)
		}
	case "look":
		if v, ok := getter.Get().(bool); ok {
			s.LookEnabled = v
		}
	case "lookspeed":
		if v, ok := getter.Get().(float64); ok {
			s.LookSpeed = locomotion.Ranges.LookSpeed.Clamp(v)
		}
	}
	return s
}

func logSettings(s locomotion.Settings) {
	log.Printf("movement: speed=%.1f look=%v lookSpeed=%.1f", s.Speed, s.LookEnabled, s.LookSpeed)
}
