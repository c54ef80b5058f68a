package doubleslider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := Settings{MinValue: 0, MaxValue: 100, MinDistance: 10, MaxDistance: 50, InitialMinValue: 20, InitialMaxValue: 30}
	require.NoError(t, Validate(valid))

	unlimited := valid
	unlimited.MaxDistance = 0
	require.NoError(t, Validate(unlimited))

	infinite := valid
	infinite.MaxDistance = math.Inf(1)
	require.NoError(t, Validate(infinite))

	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"reversed domain", func(s *Settings) { s.MinValue, s.MaxValue = 100, 0 }, ErrInvalidDomain},
		{"NaN bound", func(s *Settings) { s.MaxValue = math.NaN() }, ErrInvalidDomain},
		{"negative distance", func(s *Settings) { s.MinDistance = -1 }, ErrInvalidDistance},
		{"min above max distance", func(s *Settings) { s.MinDistance = 60 }, ErrInvalidDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			require.ErrorIs(t, Validate(s), tt.want)
		})
	}
}

func TestApply(t *testing.T) {
	f := newFixture(t, 100)
	s := Settings{
		SetupOnStart:    true,
		MinValue:        0,
		MaxValue:        10,
		MinDistance:     1,
		WholeNumbers:    true,
		InitialMinValue: 2.2,
		InitialMaxValue: 6.8,
	}
	require.NoError(t, f.ds.Apply(s))

	assert.True(t, f.ds.WholeNumbers())
	assert.Equal(t, pair{2, 7}, f.last())

	got := f.ds.Settings()
	assert.Equal(t, s, got)
}

func TestApplyWithoutSetupOnStart(t *testing.T) {
	f := newFixture(t, 100)
	s := Settings{MinValue: 0, MaxValue: 10, MinDistance: 1, MaxDistance: 5, InitialMinValue: 2, InitialMaxValue: 4}
	require.NoError(t, f.ds.Apply(s))

	assert.Empty(t, f.events)
	assert.Equal(t, s, f.ds.Settings())
}

func TestApplyRefusesInvalidSettings(t *testing.T) {
	f := newFixture(t, 100)
	err := f.ds.Apply(Settings{SetupOnStart: true, MinValue: 10, MaxValue: 0})
	require.ErrorIs(t, err, ErrInvalidDomain)
	assert.Empty(t, f.events)
}
