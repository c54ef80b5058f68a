package doubleslider

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDomain   = errors.New("invalid domain")
	ErrInvalidDistance = errors.New("invalid distance")
)

// Settings are the serialized values of a double slider.
type Settings struct {
	SetupOnStart    bool    `yaml:"setup_on_start"`
	MinValue        float64 `yaml:"min_value"`
	MaxValue        float64 `yaml:"max_value"`
	MinDistance     float64 `yaml:"min_distance"`
	MaxDistance     float64 `yaml:"max_distance"`
	WholeNumbers    bool    `yaml:"whole_numbers"`
	InitialMinValue float64 `yaml:"initial_min_value"`
	InitialMaxValue float64 `yaml:"initial_max_value"`
}

// Validate checks the caller side of the Setup contract. The resolution
// passes never fail; this is meant for hosts loading settings from outside.
func Validate(s Settings) error {
	for _, v := range []float64{s.MinValue, s.MaxValue, s.MinDistance, s.MaxDistance, s.InitialMinValue, s.InitialMaxValue} {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: NaN value", ErrInvalidDomain)
		}
	}
	if s.MinValue > s.MaxValue {
		return fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidDomain, s.MinValue, s.MaxValue)
	}
	if s.MinDistance < 0 {
		return fmt.Errorf("%w: negative minimum distance %v", ErrInvalidDistance, s.MinDistance)
	}
	if s.MaxDistance > 0 && !math.IsInf(s.MaxDistance, 1) && s.MinDistance > s.MaxDistance {
		return fmt.Errorf("%w: minimum distance %v is greater than maximum distance %v",
			ErrInvalidDistance, s.MinDistance, s.MaxDistance)
	}
	return nil
}

// Apply sets the whole numbers mode and, when SetupOnStart is set, runs
// Setup with the stored values.
func (d *DoubleSlider) Apply(s Settings) error {
	if err := Validate(s); err != nil {
		d.logger.Warnf("❌ Refusing settings: %v", err)
		return err
	}

	d.SetWholeNumbers(s.WholeNumbers)
	if !s.SetupOnStart {
		d.minValue, d.maxValue = s.MinValue, s.MaxValue
		d.minDistance, d.maxDistance = s.MinDistance, s.MaxDistance
		d.initialMinValue, d.initialMaxValue = s.InitialMinValue, s.InitialMaxValue
		return nil
	}

	d.Setup(s.MinValue, s.MaxValue, s.InitialMinValue, s.InitialMaxValue, s.MinDistance, s.MaxDistance)
	return nil
}

// Settings returns the current configuration. SetupOnStart reports whether
// Setup has run.
func (d *DoubleSlider) Settings() Settings {
	return Settings{
		SetupOnStart:    d.ready,
		MinValue:        d.minValue,
		MaxValue:        d.maxValue,
		MinDistance:     d.minDistance,
		MaxDistance:     d.maxDistance,
		WholeNumbers:    d.wholeNumbers,
		InitialMinValue: d.initialMinValue,
		InitialMaxValue: d.initialMaxValue,
	}
}
