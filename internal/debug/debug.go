package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: text is refreshed every N frames to limit allocations.
	updateInterval = 30
)

var overlayColor = rl.NewColor(0, 140, 60, 255)

// Stats are scene counters shown under the memory line.
type Stats struct {
	Groups        int
	LiveResources int
	Created       int
}

// Debug draws optional runtime overlays in the top-right corner. All overlays
// are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
}

// New returns a Debug with every overlay hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether heap allocation and scene resource counts are drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

func drawRight(text string, y int32) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(rl.GetScreenWidth())-w-padding, y, fontSize, overlayColor)
}

// Draw renders the enabled overlays. Call last in the draw callback.
func (d *Debug) Draw(stats Stats) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.fpsText == "") || (d.ShowMemAlloc && d.memText == "") {
		update = true
	}

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.memText, y)
		y += lineHeight
		drawRight(fmt.Sprintf("Groups: %d  Live: %d/%d", stats.Groups, stats.LiveResources, stats.Created), y)
	}
}
