package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window.
type Options struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool // use the monitor size instead of Width/Height
	TargetFPS  int32
	// Background returns the clear color each frame.
	Background func() color.RGBA
}

// Run opens the window and runs the main loop until it is closed. Each frame it
// calls update (input, animation), then clears the screen and calls draw.
// ESC does not quit; close via the window button.
func Run(opts Options, update, draw func()) {
	var flags uint32 = rl.FlagMsaa4xHint | rl.FlagWindowResizable
	if opts.Fullscreen {
		flags = rl.FlagMsaa4xHint | rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()
	if opts.Fullscreen {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(opts.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		bg := color.RGBA{0xff, 0xff, 0xff, 0xff}
		if opts.Background != nil {
			bg = opts.Background()
		}
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
}
