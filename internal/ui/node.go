package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single HUD element: a panel or a label. Class and ID are matched
// against the stylesheet; Bounds is resolved from style when drawn.
type Node struct {
	Class  string // "status" for .status
	ID     string // "intro" for #intro
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with optional class, id and text.
func NewNode(class, id, text string) *Node {
	return &Node{Class: class, ID: id, Text: text}
}
