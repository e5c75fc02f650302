package commands

import (
	"errors"
	"testing"
)

func newTestRegistry(calls *[]string, speed *float64, show *bool) *Registry {
	r := NewRegistry()
	r.Register("round", "start a new round", nil, func() error {
		*calls = append(*calls, "round")
		return nil
	})

	spin := NewFlagSet("spin")
	spin.Float64Var(speed, "speed", 0.01, "radians per frame")
	r.Register("spin", "set spin speed", spin, func() error {
		*calls = append(*calls, "spin")
		return nil
	})

	fps := NewFlagSet("fps")
	on := fps.Bool("show", false, "show the counter")
	off := fps.Bool("hide", false, "hide the counter")
	r.Register("fps", "toggle the FPS counter", fps, func() error {
		if *on == *off {
			return errors.New("fps: pass exactly one of --show or --hide")
		}
		*show = *on
		*calls = append(*calls, "fps")
		return nil
	})
	return r
}

func TestRun(t *testing.T) {
	var calls []string
	var speed float64
	var show bool
	r := newTestRegistry(&calls, &speed, &show)

	if err := r.Run("round"); err != nil {
		t.Fatal(err)
	}
	if err := r.Run("  spin   --speed=0.25 "); err != nil {
		t.Fatal(err)
	}
	if speed != 0.25 {
		t.Errorf("speed %v", speed)
	}
	if err := r.Run("fps --show"); err != nil {
		t.Fatal(err)
	}
	if !show {
		t.Errorf("fps not shown")
	}
	if err := r.Run("fps --hide"); err != nil {
		t.Fatalf("flags from the previous run leaked: %v", err)
	}
	if show {
		t.Errorf("fps still shown")
	}
	if err := r.Run("spin"); err != nil || speed != 0.01 {
		t.Errorf("spin without flags: %v speed %v", err, speed)
	}
	if len(calls) != 5 || calls[0] != "round" || calls[1] != "spin" || calls[2] != "fps" {
		t.Fatalf("calls %v", calls)
	}
}

func TestRunErrors(t *testing.T) {
	var calls []string
	var speed float64
	var show bool
	r := newTestRegistry(&calls, &speed, &show)

	tests := []struct {
		name string
		line string
		want error
	}{
		{"empty", "   ", ErrEmpty},
		{"unknown", "jump --high", ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Run(tt.line); !errors.Is(err, tt.want) {
				t.Fatalf("got %v want %v", err, tt.want)
			}
		})
	}

	if err := r.Run("spin --speed=fast"); err == nil {
		t.Errorf("bad flag value accepted")
	}
	if err := r.Run("round --force"); err == nil {
		t.Errorf("undefined flag accepted")
	}
	if err := r.Run("fps"); err == nil {
		t.Errorf("fps without a flag accepted")
	}
	if len(calls) != 0 {
		t.Fatalf("failed commands ran: %v", calls)
	}
}

func TestNamesAndHelp(t *testing.T) {
	var calls []string
	var speed float64
	var show bool
	r := newTestRegistry(&calls, &speed, &show)
	names := r.Names()
	if len(names) != 3 || names[0] != "fps" || names[1] != "round" || names[2] != "spin" {
		t.Fatalf("names %v", names)
	}
	help := r.Help()
	if help[1] != "round - start a new round" {
		t.Fatalf("help %v", help)
	}
}
