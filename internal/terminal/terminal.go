package terminal

import (
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"odd-one-out/internal/commands"
	"odd-one-out/internal/logger"
)

const (
	BarHeight = 36
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// Log lines drawn above the input bar when open.
	maxLinesOnScreen = 10
	lineHeight       = fontSize + 4
	maxLineLen       = 160
)

var (
	barColor   = rl.NewColor(40, 40, 40, 235)
	lineColor  = rl.NewColor(90, 90, 90, 255)
	chatBg     = rl.NewColor(24, 24, 24, 210)
	errorColor = rl.NewColor(255, 120, 110, 255)
)

// Terminal is a command console at the bottom of the screen, toggled with ESC
// or the grave key. Submitted lines run through the command registry; results
// and errors go to the log, whose tail is shown above the input.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed terminal.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the terminal is capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Update handles toggling and, when open, typing, backspace, paste and enter.
// Call once per frame before any other key handling.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		t.inputBuf = ""
		// drop the toggle key's character
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && strings.TrimSpace(t.inputBuf) != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Submit logs line and runs it as a command. "help" lists the commands.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	if strings.TrimSpace(line) == "help" {
		for _, h := range t.reg.Help() {
			t.log.Log(h)
		}
		return
	}
	if err := t.reg.Run(line); err != nil {
		t.log.Errorf("%v", err)
	}
}

// Draw draws the input bar and recent log lines when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	chatHeight := int32(maxLinesOnScreen * lineHeight)
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight, chatY = barY, 0
	}
	rl.DrawRectangle(0, chatY, screenW, chatHeight, chatBg)
	for i, line := range t.log.Tail(maxLinesOnScreen) {
		line = logger.Clip(line, maxLineLen)
		c := rl.LightGray
		if strings.Contains(line, "] ERROR ") {
			c = errorColor
		}
		rl.DrawText(line, padding, chatY+int32(i*lineHeight)+padding/2, fontSize, c)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
