package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	buttonWidth  = 160
	buttonHeight = 40
	buttonGap    = 12
	buttonMargin = 16
)

// Buttons are the two round triggers, anchored bottom-center.
type Buttons struct{}

// Draw draws both buttons and reports which was clicked this frame.
// Call between BeginDrawing and EndDrawing.
func (Buttons) Draw() (newRound, reveal bool) {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	y := screenH - buttonHeight - buttonMargin
	left := (screenW - 2*buttonWidth - buttonGap) / 2
	newRound = gui.Button(rl.NewRectangle(left, y, buttonWidth, buttonHeight), "New Round")
	reveal = gui.Button(rl.NewRectangle(left+buttonWidth+buttonGap, y, buttonWidth, buttonHeight), "Reveal Answer")
	return newRound, reveal
}
