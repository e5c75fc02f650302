package main

import (
	"errors"
	"fmt"

	"odd-one-out/internal/commands"
	"odd-one-out/internal/gameconfig"
)

var errShowHide = errors.New("pass exactly one of --show or --hide")

// registerCommands wires the game actions and display toggles into a.reg.
// Toggles persist the preferences file.
func (a *app) registerCommands() {
	a.reg.Register("round", "start a new round", nil, a.ctrl.NewRound)
	a.reg.Register("reveal", "show the missing shape", nil, a.ctrl.RevealAnswer)

	a.registerToggle("fps", "show or hide the FPS counter", func(on bool) {
		a.debug.SetShowFPS(on)
		a.prefs.ShowFPS = on
	})
	a.registerToggle("mem", "show or hide memory and resource counters", func(on bool) {
		a.debug.SetShowMemAlloc(on)
		a.prefs.ShowMemAlloc = on
	})
	a.registerToggle("grid", "show or hide the background grid", func(on bool) {
		a.renderer.SetGridVisible(on)
		a.prefs.GridVisible = on
	})

	spin := commands.NewFlagSet("spin")
	speed := spin.Float64("speed", gameconfig.DefaultSpinSpeed, "rotation per frame in radians")
	a.reg.Register("spin", "set the rotation speed (--speed=0.01)", spin, func() error {
		a.prefs.SpinSpeed = float32(*speed)
		a.log.Infof("spin speed %.3f", *speed)
		return a.savePrefs()
	})
}

func (a *app) registerToggle(name, usage string, apply func(on bool)) {
	fs := commands.NewFlagSet(name)
	show := fs.Bool("show", false, "show")
	hide := fs.Bool("hide", false, "hide")
	a.reg.Register(name, usage+" (--show|--hide)", fs, func() error {
		if *show == *hide {
			return fmt.Errorf("%s: %w", name, errShowHide)
		}
		apply(*show)
		return a.savePrefs()
	})
}

func (a *app) savePrefs() error {
	if err := gameconfig.Save(a.cfg.PrefsPath, a.prefs); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}
