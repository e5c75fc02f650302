package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"odd-one-out/internal/ui/css"
)

func TestHUDNodesMatchStylesheet(t *testing.T) {
	sheet, err := css.Parse(hudCSS)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	h := NewHUD()
	nodes := h.AppendNodes(nil, Status{IntroVisible: true})
	if len(nodes) != 6 || nodes[0] != h.intro {
		t.Fatalf("got %d nodes, intro first: %v", len(nodes), nodes[0] == h.intro)
	}
	for _, n := range nodes {
		if len(sheet.Match(n.Class, n.ID)) == 0 {
			t.Errorf("node class=%q id=%q has no rule", n.Class, n.ID)
		}
	}
	if got := h.AppendNodes(nil, Status{}); len(got) != 5 {
		t.Fatalf("intro hidden: got %d nodes", len(got))
	}
}

func TestHUDText(t *testing.T) {
	h := NewHUD()
	h.AppendNodes(nil, Status{Round: 2, Decoys: []string{"a", "b", "c"}})
	if h.round.Text != "Round 2: 3 decoys" || h.answer.Text != "Answer: ?" {
		t.Fatalf("round=%q answer=%q", h.round.Text, h.answer.Text)
	}
	h.AppendNodes(nil, Status{Round: 2, Revealed: true, Answer: "sphere"})
	if h.answer.Text != "Answer: sphere" {
		t.Fatalf("answer=%q", h.answer.Text)
	}
}

func TestHUDClipsLogOnRuneBoundary(t *testing.T) {
	h := NewHUD()
	// 45 ASCII bytes then multi-byte runes straddling the byte cut point
	long := strings.Repeat("x", 44) + "éééééééééé"
	h.AppendNodes(nil, Status{LastLog: long})
	got := h.log.Text
	if !utf8.ValidString(got) {
		t.Fatalf("log text split a character: %q", got)
	}
	if !strings.HasSuffix(got, "...") || utf8.RuneCountInString(got) != maxLogRunes {
		t.Fatalf("log text %q (%d runes)", got, utf8.RuneCountInString(got))
	}
}
