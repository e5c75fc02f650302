package game

import (
	"image/color"

	"odd-one-out/internal/shapes"
)

// Placement is one shape on screen.
type Placement struct {
	Kind      shapes.Kind
	ColorName string
	Color     color.RGBA
	X, Y      float32
}

// RoundState is the state of the current round. AnswerIndex is -1 before the
// first round.
type RoundState struct {
	Number              int
	AnswerIndex         int
	PreviousAnswerIndex int
	Displayed           []Placement
	Revealed            bool
	Answer              *Placement // set once revealed
}

// GameState is everything the controller owns.
type GameState struct {
	Round        RoundState
	Reference    []Placement
	IntroVisible bool
}
