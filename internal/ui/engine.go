package ui

import (
	_ "embed"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"odd-one-out/internal/ui/css"
)

// lineSpacing matches raylib's default gap between text lines.
const lineSpacing = 2

//go:embed hud.css
var hudCSS string

// Engine holds the stylesheet and the nodes to draw this frame, and draws them
// with raylib. Nodes are drawn in order. Resolved styles are cached per node
// until the stylesheet changes.
type Engine struct {
	sheet    *css.Stylesheet
	nodes    []*Node
	styles   map[*Node]css.Style
	fontPath string
	font     rl.Font // zero texture ID = raylib default font
}

// New creates an engine styled with the built-in HUD stylesheet.
func New() *Engine {
	sheet, err := css.Parse(hudCSS)
	if err != nil {
		panic(fmt.Sprintf("embedded stylesheet: %v", err))
	}
	e := &Engine{}
	e.SetStylesheet(sheet)
	return e
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.styles = make(map[*Node]css.Style)
}

// SetFontPath sets a TTF/OTF file for HUD text. It is loaded on the next Draw,
// once the window exists; if loading fails the default font stays.
func (e *Engine) SetFontPath(path string) {
	e.fontPath = path
}

func (e *Engine) ensureFont() {
	if e.fontPath == "" {
		return
	}
	path := e.fontPath
	e.fontPath = ""
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
}

func (e *Engine) measure(text string, size int32) int32 {
	if e.font.Texture.ID == 0 {
		return rl.MeasureText(text, size)
	}
	return int32(rl.MeasureTextEx(e.font, text, float32(size), 1).X)
}

func (e *Engine) text(text string, x, y, size int32, c rl.Color) {
	if e.font.Texture.ID == 0 {
		rl.DrawText(text, x, y, size, c)
		return
	}
	rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
}

// SetNodes replaces the nodes drawn by Draw.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

func (e *Engine) style(n *Node) css.Style {
	if s, ok := e.styles[n]; ok {
		return s
	}
	s := css.Resolve(e.sheet.Match(n.Class, n.ID))
	e.styles[n] = s
	return s
}

// Draw draws every node: background, 1px border, then text.
func (e *Engine) Draw() {
	e.ensureFont()
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for _, n := range e.nodes {
		st := e.style(n)
		w, h := st.Width, st.Height
		if w == 0 && n.Text != "" {
			w = e.measure(n.Text, st.FontSize) + 2*st.Padding
		}
		if h == 0 && n.Text != "" {
			lines := int32(strings.Count(n.Text, "\n") + 1)
			h = lines*(st.FontSize+lineSpacing) + 2*st.Padding
		}
		x, y := st.Place(screenW, screenH, w, h)
		n.Bounds = rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))

		if st.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, st.Background)
		}
		if st.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, st.Border)
		}
		if n.Text != "" {
			e.text(n.Text, x+st.Padding, y+st.Padding, st.FontSize, st.Color)
		}
	}
}
