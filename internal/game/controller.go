// Package game runs the odd-one-out rounds: it picks the hidden shape, lays out
// the decoys and reveals the answer on request.
package game

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"odd-one-out/internal/assembler"
	"odd-one-out/internal/logger"
	"odd-one-out/internal/shapes"
)

var (
	// ErrNoRound is returned by RevealAnswer before the first round.
	ErrNoRound = errors.New("no round in progress")
	// ErrAlreadyRevealed is returned by a second RevealAnswer in the same round.
	ErrAlreadyRevealed = errors.New("answer already revealed")
)

// Controller owns the game state. It is not safe for concurrent use; all calls
// come from the frame loop.
type Controller struct {
	catalog *shapes.Catalog
	asm     *assembler.Assembler
	rng     Rand
	log     *logger.Logger
	state   GameState
}

// NewController returns a controller before its first round, with the intro
// text visible and nothing on screen.
func NewController(cat *shapes.Catalog, asm *assembler.Assembler, rng Rand, log *logger.Logger) *Controller {
	return &Controller{
		catalog: cat,
		asm:     asm,
		rng:     rng,
		log:     log,
		state: GameState{
			Round:        RoundState{AnswerIndex: -1, PreviousAnswerIndex: -1},
			IntroVisible: true,
		},
	}
}

// ShowReferenceSheet places every catalog shape, in its own color, at its
// reference position.
func (c *Controller) ShowReferenceSheet() error {
	c.state.Reference = c.state.Reference[:0]
	for i, e := range c.catalog.Entries {
		p := Placement{Kind: e.Kind, ColorName: e.ColorName, Color: e.Color, X: e.Reference[0], Y: e.Reference[1]}
		if err := c.place(p); err != nil {
			return fmt.Errorf("reference sheet entry %d: %w", i, err)
		}
		c.state.Reference = append(c.state.Reference, p)
	}
	c.log.Infof("reference sheet: %d shapes", len(c.state.Reference))
	return nil
}

// NewRound hides the intro, disposes every shape on screen and lays out three
// decoys for a fresh answer that differs from the previous one. The round state
// changes only once every decoy is placed; on error the screen is left empty.
func (c *Controller) NewRound() error {
	c.state.IntroVisible = false
	c.asm.DisposeAll()
	c.state.Reference = nil

	r := &c.state.Round
	rc := SelectRoundContent(c.rng, len(c.catalog.Entries), r.PreviousAnswerIndex)
	displayed := make([]Placement, 0, len(rc.Shapes))
	for i := range rc.Shapes {
		shape := c.catalog.Entries[rc.Shapes[i]]
		paint := c.catalog.Entries[rc.Colors[i]]
		p := Placement{
			Kind:      shape.Kind,
			ColorName: paint.ColorName,
			Color:     paint.Color,
			X:         c.catalog.Slots[i],
			Y:         c.catalog.SlotY,
		}
		if err := c.place(p); err != nil {
			c.asm.DisposeAll()
			return fmt.Errorf("round %d decoy %d: %w", r.Number+1, i, err)
		}
		displayed = append(displayed, p)
	}

	r.Number++
	r.AnswerIndex = rc.Answer
	r.PreviousAnswerIndex = rc.Answer
	r.Revealed = false
	r.Answer = nil
	r.Displayed = displayed
	c.log.Infof("round %d: decoys %v %v %v", r.Number, displayed[0].Kind, displayed[1].Kind, displayed[2].Kind)
	return nil
}

// RevealAnswer adds the answer shape, in its own catalog color, at the reveal
// position. The decoys stay.
func (c *Controller) RevealAnswer() error {
	r := &c.state.Round
	if r.AnswerIndex < 0 {
		return fmt.Errorf("reveal: %w", ErrNoRound)
	}
	if r.Revealed {
		return fmt.Errorf("reveal round %d: %w", r.Number, ErrAlreadyRevealed)
	}
	e := c.catalog.Entries[r.AnswerIndex]
	p := Placement{Kind: e.Kind, ColorName: e.ColorName, Color: e.Color, X: c.catalog.Reveal[0], Y: c.catalog.Reveal[1]}
	if err := c.place(p); err != nil {
		return fmt.Errorf("reveal round %d: %w", r.Number, err)
	}
	r.Revealed = true
	r.Answer = &p
	c.log.Infof("round %d: answer %v (%s)", r.Number, e.Kind, e.ColorName)
	return nil
}

// State returns a deep copy of the game state.
func (c *Controller) State() GameState {
	var out GameState
	if err := copier.CopyWithOption(&out, &c.state, copier.Option{DeepCopy: true}); err != nil {
		c.log.Errorf("copy state: %v", err)
	}
	return out
}

// Spin rotates every shape on screen by delta radians about X and Y.
func (c *Controller) Spin(delta float32) {
	c.asm.Spin(delta)
}

func (c *Controller) place(p Placement) error {
	d, err := shapes.New(p.Kind)
	if err != nil {
		return err
	}
	_, err = c.asm.Create(d, p.Color, p.X, p.Y)
	return err
}
