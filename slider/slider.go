package slider

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// SingleSlider holds one value inside [min, max].
//
// Every SetValue normalizes the value (clamp, and rounding in whole numbers
// mode), stores it, then calls the change callback with the stored value.
// External input goes through Drag, which is refused while the slider is
// disabled.
type SingleSlider struct {
	name         string
	value        float64
	min          float64
	max          float64
	wholeNumbers bool
	enabled      bool
	onChange     func(float64)
}

func New(name string) *SingleSlider {
	return &SingleSlider{
		name:    name,
		max:     1,
		enabled: true,
	}
}

func (s *SingleSlider) Name() string {
	return s.name
}

// Setup stores the domain and the initial value and registers the change
// callback. The callback is not called.
func (s *SingleSlider) Setup(value, min, max float64, onChange func(float64)) {
	s.min = min
	s.max = max
	s.onChange = onChange
	s.value = s.Normalize(value)

	log.Debugf("🐞 Setting up slider %s to %v in [%v, %v]", s.name, s.value, min, max)
}

// SetValue stores v and calls the change callback, whether or not the
// stored value changed.
func (s *SingleSlider) SetValue(v float64) {
	s.value = s.Normalize(v)
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

// Drag is the input side of the slider: a value coming from the user. It
// returns false and leaves the value untouched when the slider is disabled.
func (s *SingleSlider) Drag(v float64) bool {
	if !s.enabled {
		log.Debugf("🐞 Ignoring input %v on disabled slider %s", v, s.name)
		return false
	}
	s.SetValue(v)
	return true
}

func (s *SingleSlider) Value() float64 {
	return s.value
}

func (s *SingleSlider) Minimum() float64 {
	return s.min
}

func (s *SingleSlider) Maximum() float64 {
	return s.max
}

func (s *SingleSlider) Enabled() bool {
	return s.enabled
}

func (s *SingleSlider) SetEnabled(enabled bool) {
	s.enabled = enabled
}

func (s *SingleSlider) WholeNumbers() bool {
	return s.wholeNumbers
}

// SetWholeNumbers switches the mode and re-normalizes the stored value. The
// callback is not called.
func (s *SingleSlider) SetWholeNumbers(whole bool) {
	s.wholeNumbers = whole
	s.value = s.Normalize(s.value)
}

// Normalize returns v as the slider would store it. In whole numbers mode the
// domain shrinks to its integer part when it has one. NaN keeps the stored
// value.
func (s *SingleSlider) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		v = s.value
	}
	lo, hi := s.min, s.max
	if s.wholeNumbers {
		v = math.Round(v)
		if math.Ceil(lo) <= math.Floor(hi) {
			lo, hi = math.Ceil(lo), math.Floor(hi)
		}
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
