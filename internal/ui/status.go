package ui

import (
	"fmt"

	"odd-one-out/internal/logger"
)

// Status is what the HUD shows about the game. The game layer fills it; ui does
// not depend on game.
type Status struct {
	IntroVisible bool
	Round        int
	Decoys       []string
	Revealed     bool
	Answer       string
	LastLog      string
}

// IntroText is shown on the reference sheet until the first round.
const IntroText = "One of these shapes is missing from the next round.\n" +
	"Press New Round, then guess which one. Reveal Answer to check."

// maxLogRunes fits the last log line inside the status panel.
const maxLogRunes = 48

// HUD owns the intro label and the status panel and refreshes their text.
type HUD struct {
	intro  *Node
	panel  *Node
	title  *Node
	round  *Node
	answer *Node
	log    *Node
}

// NewHUD creates the HUD nodes, styled by #intro and the .status-* classes.
func NewHUD() *HUD {
	return &HUD{
		intro:  NewNode("", "intro", IntroText),
		panel:  NewNode("status", "", ""),
		title:  NewNode("status-title", "", "Odd One Out"),
		round:  NewNode("status-round", "", ""),
		answer: NewNode("status-answer", "", ""),
		log:    NewNode("status-log", "", ""),
	}
}

// AppendNodes appends the HUD nodes to dst after updating their text from s.
// The intro is appended only while visible. Call every frame.
func (h *HUD) AppendNodes(dst []*Node, s Status) []*Node {
	if s.IntroVisible {
		dst = append(dst, h.intro)
	}
	if s.Round == 0 {
		h.round.Text = "Reference sheet"
	} else {
		h.round.Text = fmt.Sprintf("Round %d: %d decoys", s.Round, len(s.Decoys))
	}
	switch {
	case s.Revealed:
		h.answer.Text = "Answer: " + s.Answer
	case s.Round > 0:
		h.answer.Text = "Answer: ?"
	default:
		h.answer.Text = ""
	}
	h.log.Text = logger.Clip(s.LastLog, maxLogRunes)
	return append(dst, h.panel, h.title, h.round, h.answer, h.log)
}
