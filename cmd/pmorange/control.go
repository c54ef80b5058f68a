package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"gargoton.petite-maison-orange.fr/eric/pmorange/config"
	"gargoton.petite-maison-orange.fr/eric/pmorange/doubleslider"
	"gargoton.petite-maison-orange.fr/eric/pmorange/fill"
	"gargoton.petite-maison-orange.fr/eric/pmorange/slider"
)

type control struct {
	ds    *doubleslider.DoubleSlider
	lower *slider.SingleSlider
	upper *slider.SingleSlider
	area  *fill.Area
	ready bool
}

// newControl wires a double slider to fresh sliders and a fill area sized
// from the configuration. Listeners must be registered before apply.
func newControl(cfg *config.Config) (*control, error) {
	c := &control{
		lower: slider.New("min"),
		upper: slider.New("max"),
		area:  fill.NewArea(cfg.FillWidth()),
	}
	ds, err := doubleslider.New(c.lower, c.upper, c.area)
	if err != nil {
		return nil, err
	}
	c.ds = ds
	return c, nil
}

var (
	errNotSetUp = errors.New("control not set up (setup_on_start is false)")
	errDisabled = errors.New("control disabled")
)

// apply runs the settings. With setup_on_start off the control keeps the
// settings but stays unset, and every move is refused.
func (c *control) apply(s doubleslider.Settings) error {
	if err := c.ds.Apply(s); err != nil {
		return err
	}
	c.ready = s.SetupOnStart
	return nil
}

type move struct {
	lower bool
	value float64
}

func parseMove(arg string) (move, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return move{}, fmt.Errorf("invalid move %q: expected lower=<value> or upper=<value>", arg)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return move{}, fmt.Errorf("invalid move %q: %w", arg, err)
	}
	if math.IsNaN(v) {
		return move{}, fmt.Errorf("invalid move %q: not a number", arg)
	}

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "lower", "min":
		return move{lower: true, value: v}, nil
	case "upper", "max":
		return move{lower: false, value: v}, nil
	}
	return move{}, fmt.Errorf("invalid move %q: unknown bound %q", arg, key)
}

func parseMoves(args []string) ([]move, error) {
	moves := make([]move, 0, len(args))
	for _, arg := range args {
		m, err := parseMove(arg)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// drag feeds a move through the input side of the matching slider.
func (c *control) drag(m move) error {
	if !c.ready {
		return errNotSetUp
	}
	s := c.upper
	if m.lower {
		s = c.lower
	}
	if !s.Drag(m.value) {
		return errDisabled
	}
	return nil
}

// dragAll applies moves in order. Refused moves are logged and skipped.
func (c *control) dragAll(moves []move) {
	for _, m := range moves {
		if err := c.drag(m); err != nil {
			log.Warnf("⚠️ %s refused: %v", describeMove(m), err)
		}
	}
}
