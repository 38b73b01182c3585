package main

import (
	"errors"
	"image"
	"log"
	"os"

	"github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/fonts"
	"github.com/automoto/tablescore/scenes"
	"github.com/automoto/tablescore/shared/profile"
	"github.com/automoto/tablescore/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

const defaultProfilesPath = "profiles.yaml"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(rt *systems.Runtime) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		rt.RememberVariant(config.Debug.Variant)
		g.scene = scenes.NewScoreboardScene(g, rt, config.Debug.Variant)
	} else {
		g.scene = scenes.NewMenuScene(g, rt)
	}

	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		// Stop the clock goroutine before the process exits
		g.scene.Close()
		return ebiten.Termination
	}
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
	flags := pflag.NewFlagSet("tablescore", pflag.ExitOnError)
	variant := flags.String("variant", config.Debug.Variant, "scoreboard opened by --skip-menu (tablesoccer, volleyball)")
	profilesPath := flags.String("profiles", defaultProfilesPath, "YAML file with scoreboard profile overrides")
	skipMenu := flags.Bool("skip-menu", config.Debug.SkipMenu, "open the scoreboard directly")
	fullscreen := flags.Bool("fullscreen", false, "start in fullscreen")
	mute := flags.Bool("mute", false, "start with sound muted")
	debug := flags.Bool("debug", false, "show the debug overlay (toggle with F3)")
	_ = flags.Parse(os.Args[1:])

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// The default file is optional, an explicit --profiles must exist
	profiles, err := profile.Load(*profilesPath, !flags.Changed("profiles"))
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}
	if _, ok := profiles.Get(*variant); !ok {
		log.Fatalf("Unknown variant %q (known: %v)", *variant, profiles.IDs())
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Variant = *variant
	config.Debug.Overlay = *debug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	store, err := systems.OpenStore("tablescore")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := store.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		saved = systems.DefaultSettings()
	}
	if *fullscreen {
		saved.Fullscreen = true
	}
	if *mute {
		saved.Muted = true
	}

	rt := systems.NewRuntime(profiles, store, systems.NewAudioEngine(), saved)

	if err := ebiten.RunGame(NewGame(rt)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
