package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"odd-one-out/internal/assembler"
	"odd-one-out/internal/commands"
	"odd-one-out/internal/debug"
	"odd-one-out/internal/env"
	"odd-one-out/internal/fonts"
	"odd-one-out/internal/game"
	"odd-one-out/internal/gameconfig"
	"odd-one-out/internal/graphics"
	"odd-one-out/internal/logger"
	"odd-one-out/internal/render"
	"odd-one-out/internal/scene"
	"odd-one-out/internal/shapes"
	"odd-one-out/internal/terminal"
	"odd-one-out/internal/ui"
)

func main() {
	runtime.LockOSThread()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "odd-one-out:", err)
		os.Exit(1)
	}
}

// app is everything the frame callbacks touch.
type app struct {
	cfg      env.Config
	prefs    gameconfig.Prefs
	log      *logger.Logger
	scene    *scene.Scene
	ctrl     *game.Controller
	renderer *render.Renderer
	debug    *debug.Debug
	reg      *commands.Registry
	term     *terminal.Terminal
	hud      *ui.HUD
	ui       *ui.Engine
	buttons  ui.Buttons
	hudNodes []*ui.Node
}

func run() error {
	if err := env.Load(".env"); err != nil {
		return err
	}
	cfg, err := env.Parse()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogPath)

	prefs, err := gameconfig.Load(cfg.PrefsPath)
	if err != nil {
		log.Errorf("%v; using defaults", err)
	}
	cat, err := shapes.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("starting: seed %d, %d shapes", seed, len(cat.Entries))

	scn := scene.New()
	a := &app{
		cfg:      cfg,
		prefs:    prefs,
		log:      log,
		scene:    scn,
		ctrl:     game.NewController(cat, assembler.New(scn), rand.New(rand.NewSource(seed)), log),
		renderer: render.New(),
		debug:    debug.New(),
		reg:      commands.NewRegistry(),
		hud:      ui.NewHUD(),
		ui:       ui.New(),
	}
	a.term = terminal.New(log, a.reg)
	if cfg.Font != "" {
		if path, err := fonts.Find(cfg.Font, fonts.DefaultDirs()); err != nil {
			log.Errorf("font %q: %v", cfg.Font, err)
		} else {
			a.ui.SetFontPath(path)
		}
	}
	a.renderer.SetGridVisible(prefs.GridVisible)
	a.debug.SetShowFPS(prefs.ShowFPS)
	a.debug.SetShowMemAlloc(prefs.ShowMemAlloc)
	a.registerCommands()

	if err := a.ctrl.ShowReferenceSheet(); err != nil {
		return err
	}

	graphics.Run(graphics.Options{
		Title:      "Odd One Out",
		Width:      cfg.WindowWidth,
		Height:     cfg.WindowHeight,
		Fullscreen: cfg.Fullscreen,
		TargetFPS:  cfg.FPS,
		Background: func() color.RGBA { return scn.Background },
	}, a.update, a.draw)
	return nil
}

// keyBindings map single keys to command lines while the terminal is closed.
var keyBindings = []struct {
	key  int32
	line func(a *app) string
}{
	{rl.KeyN, func(*app) string { return "round" }},
	{rl.KeyR, func(*app) string { return "reveal" }},
	{rl.KeyF, func(a *app) string { return toggleLine("fps", a.debug.ShowFPS) }},
	{rl.KeyG, func(a *app) string { return toggleLine("grid", a.renderer.GridVisible) }},
}

func toggleLine(name string, on bool) string {
	if on {
		return name + " --hide"
	}
	return name + " --show"
}

func (a *app) exec(line string) {
	if err := a.reg.Run(line); err != nil {
		a.log.Errorf("%s: %v", line, err)
	}
}

func (a *app) update() {
	a.term.Update()
	if !a.term.IsOpen() {
		for _, b := range keyBindings {
			if rl.IsKeyPressed(b.key) {
				a.exec(b.line(a))
			}
		}
	}
	a.ctrl.Spin(a.prefs.SpinSpeed)
}

func (a *app) draw() {
	a.renderer.Draw(a.scene)

	a.hudNodes = a.hud.AppendNodes(a.hudNodes[:0], a.status())
	a.ui.SetNodes(a.hudNodes)
	a.ui.Draw()

	if newRound, reveal := a.buttons.Draw(); newRound {
		a.exec("round")
	} else if reveal {
		a.exec("reveal")
	}

	a.term.Draw()
	tr := a.scene.Tracker()
	a.debug.Draw(debug.Stats{
		Groups:        len(a.scene.Groups()),
		LiveResources: tr.LiveCount(),
		Created:       tr.Created(),
	})
}

func (a *app) status() ui.Status {
	st := a.ctrl.State()
	s := ui.Status{
		IntroVisible: st.IntroVisible,
		Round:        st.Round.Number,
		Revealed:     st.Round.Revealed,
	}
	for _, p := range st.Round.Displayed {
		s.Decoys = append(s.Decoys, p.Kind.String())
	}
	if st.Round.Answer != nil {
		s.Answer = fmt.Sprintf("%v (%s)", st.Round.Answer.Kind, st.Round.Answer.ColorName)
	}
	if tail := a.log.Tail(1); len(tail) == 1 {
		s.LastLog = tail[0]
	}
	return s
}
