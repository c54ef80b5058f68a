package doubleslider

import (
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMissingSlider = errors.New("missing slider")
	ErrMissingFill   = errors.New("missing fill area")
)

// BoundProvider is a single-handle slider holding one of the two bounds.
//
// The provider keeps its value inside the domain given to Setup and calls
// the registered callback on every SetValue, including the writes made by
// the DoubleSlider itself. Setup stores the value without calling back, and
// so does SetWholeNumbers, which re-normalizes the stored value.
type BoundProvider interface {
	Setup(value, min, max float64, onChange func(float64))
	SetValue(value float64)
	Value() float64
	SetEnabled(enabled bool)
	Enabled() bool
	SetWholeNumbers(whole bool)
}

// FillIndicator is the area drawn between the two handles.
type FillIndicator interface {
	Width() float64
	SetLeftInset(x float64)
	SetRightInset(x float64)
}

// ValueChangedFunc receives the resolved pair at the end of every
// resolution pass.
type ValueChangedFunc func(min, max float64)

// DoubleSlider links two BoundProviders into a range selection.
//
// It owns the domain, the distance limits and the resolved pair. A change on
// either slider runs a resolution pass which may write corrected values back
// into one or both sliders, refreshes the fill insets and notifies the
// listeners with the final pair.
//
// A DoubleSlider is not safe for concurrent use.
type DoubleSlider struct {
	id uuid.UUID

	sliderMin BoundProvider
	sliderMax BoundProvider
	fillArea  FillIndicator

	minValue     float64
	maxValue     float64
	minDistance  float64
	maxDistance  float64
	wholeNumbers bool

	initialMinValue float64
	initialMaxValue float64

	lower float64
	upper float64
	ready bool

	listeners []ValueChangedFunc
	logger    *log.Entry
}

// New wires a DoubleSlider to its two sliders and its fill area. Nothing is
// resolved until Setup is called.
func New(sliderMin, sliderMax BoundProvider, fill FillIndicator) (*DoubleSlider, error) {
	if sliderMin == nil || sliderMax == nil {
		log.Errorf("❌ Missing slider min: %v, max: %v", sliderMin, sliderMax)
		return nil, ErrMissingSlider
	}
	if fill == nil {
		log.Error("❌ Missing fill area")
		return nil, ErrMissingFill
	}

	id := uuid.New()
	return &DoubleSlider{
		id:        id,
		sliderMin: sliderMin,
		sliderMax: sliderMax,
		fillArea:  fill,
		logger:    log.WithField("id", id.String()),
	}, nil
}

func (d *DoubleSlider) ID() uuid.UUID {
	return d.id
}

// Setup (re)initializes the configuration and the state.
//
// Both sliders receive the domain and their initial value, then both
// resolution passes run once so that the initial pair is normalized and a
// first notification is emitted even when nothing needs correcting.
//
// Callers must supply minValue <= maxValue; see Validate.
func (d *DoubleSlider) Setup(minValue, maxValue, initialMinValue, initialMaxValue, minDistance, maxDistance float64) {
	d.minValue = minValue
	d.maxValue = maxValue
	d.initialMinValue = initialMinValue
	d.initialMaxValue = initialMaxValue
	d.minDistance = minDistance
	d.maxDistance = maxDistance

	d.sliderMin.SetWholeNumbers(d.wholeNumbers)
	d.sliderMax.SetWholeNumbers(d.wholeNumbers)

	d.sliderMin.Setup(initialMinValue, minValue, maxValue, d.minValueChanged)
	d.sliderMax.Setup(initialMaxValue, minValue, maxValue, d.maxValueChanged)

	d.lower = d.sliderMin.Value()
	d.upper = d.sliderMax.Value()
	d.ready = true

	d.logger.Debugf("🐞 Setting up range [%v, %v] initial (%v, %v) distance [%v, %v]",
		minValue, maxValue, initialMinValue, initialMaxValue, minDistance, maxDistance)

	d.minValueChanged(d.lower)
	d.maxValueChanged(d.upper)
}

// OnValueChanged registers a listener. Listeners are called in registration
// order at the end of every resolution pass.
func (d *DoubleSlider) OnValueChanged(fn ValueChangedFunc) {
	if fn == nil {
		return
	}
	d.listeners = append(d.listeners, fn)
}

// Enabled reports whether both sliders accept input.
func (d *DoubleSlider) Enabled() bool {
	return d.sliderMax.Enabled() && d.sliderMin.Enabled()
}

// SetEnabled forwards the flag to both sliders. Stored values are untouched.
func (d *DoubleSlider) SetEnabled(enabled bool) {
	d.sliderMin.SetEnabled(enabled)
	d.sliderMax.SetEnabled(enabled)
	d.logger.Debugf("🐞 Enabled set to %v", enabled)
}

func (d *DoubleSlider) WholeNumbers() bool {
	return d.wholeNumbers
}

// SetWholeNumbers switches integer mode on both sliders. Once set up, the
// pair is taken back from the re-normalized sliders before both passes run,
// so no pass sees one rounded bound next to an unrounded one.
func (d *DoubleSlider) SetWholeNumbers(whole bool) {
	d.wholeNumbers = whole
	d.sliderMin.SetWholeNumbers(whole)
	d.sliderMax.SetWholeNumbers(whole)
	d.logger.Debugf("🐞 Whole numbers set to %v", whole)

	if !d.ready {
		return
	}
	d.lower = d.sliderMin.Value()
	d.upper = d.sliderMax.Value()
	d.sliderMin.SetValue(d.lower)
	d.sliderMax.SetValue(d.upper)
}

// MinValue returns the resolved lower bound.
func (d *DoubleSlider) MinValue() float64 {
	return d.lower
}

// MaxValue returns the resolved upper bound.
func (d *DoubleSlider) MaxValue() float64 {
	return d.upper
}

// Domain returns the configured [min, max] interval.
func (d *DoubleSlider) Domain() (float64, float64) {
	return d.minValue, d.maxValue
}

// Distances returns the configured minimum and maximum distance.
func (d *DoubleSlider) Distances() (float64, float64) {
	return d.minDistance, d.maxDistance
}

// refresh writes the fill insets for the current pair and notifies the
// listeners. It closes every resolution pass.
func (d *DoubleSlider) refresh() {
	off := ComputeOffsets(d.lower, d.upper, d.minValue, d.maxValue, d.fillArea.Width())
	d.fillArea.SetLeftInset(off.Left)
	d.fillArea.SetRightInset(off.Right)

	for _, fn := range d.listeners {
		fn(d.lower, d.upper)
	}
}
