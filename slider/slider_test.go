package slider_test

import (
	"math"
	"testing"

	"gargoton.petite-maison-orange.fr/eric/pmorange/slider"
)

func TestSetupDoesNotCallBack(t *testing.T) {
	s := slider.New("min")
	calls := 0
	s.Setup(150, 0, 100, func(float64) { calls++ })
	if calls != 0 {
		t.Fatalf("setup called back %d times", calls)
	}
	if s.Value() != 100 {
		t.Fatalf("value not clamped: %v", s.Value())
	}
}

func TestSetValueAlwaysCallsBack(t *testing.T) {
	s := slider.New("min")
	var got []float64
	s.Setup(10, 0, 100, func(v float64) { got = append(got, v) })

	s.SetValue(10)
	s.SetValue(-5)
	s.SetValue(42.5)

	want := []float64{10, 0, 42.5}
	if len(got) != len(want) {
		t.Fatalf("got %d callbacks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("callback %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWholeNumbers(t *testing.T) {
	s := slider.New("max")
	s.SetWholeNumbers(true)
	s.Setup(0, 0.5, 10.5, nil)

	tests := []struct {
		in, want float64
	}{
		{4.7, 5},
		{4.2, 4},
		{-3, 1},
		{10.4, 10},
		{10.6, 10},
	}
	for _, tt := range tests {
		if got := s.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDragRefusedWhenDisabled(t *testing.T) {
	s := slider.New("min")
	calls := 0
	s.Setup(10, 0, 100, func(float64) { calls++ })
	s.SetEnabled(false)

	if s.Drag(50) {
		t.Fatal("disabled slider accepted input")
	}
	if calls != 0 || s.Value() != 10 {
		t.Fatalf("disabled slider changed: calls=%d value=%v", calls, s.Value())
	}

	s.SetValue(20)
	if calls != 1 || s.Value() != 20 {
		t.Fatal("programmatic writes must land on a disabled slider")
	}

	s.SetEnabled(true)
	if !s.Drag(50) || s.Value() != 50 {
		t.Fatal("enabled slider refused input")
	}
}

func TestSwitchingWholeNumbersNormalizesValue(t *testing.T) {
	s := slider.New("min")
	calls := 0
	s.Setup(6.6, 0.5, 10, func(float64) { calls++ })

	s.SetWholeNumbers(true)
	if s.Value() != 7 {
		t.Fatalf("value not rounded: %v", s.Value())
	}
	if calls != 0 {
		t.Fatalf("mode switch called back %d times", calls)
	}

	s.SetValue(0.7)
	s.SetWholeNumbers(false)
	if s.Value() != 1 {
		t.Fatalf("value changed when leaving whole numbers: %v", s.Value())
	}
}

func TestNaNKeepsValue(t *testing.T) {
	s := slider.New("min")
	var got []float64
	s.Setup(42, 0, 100, func(v float64) { got = append(got, v) })

	if !s.Drag(math.NaN()) {
		t.Fatal("enabled slider refused input")
	}
	if s.Value() != 42 {
		t.Fatalf("NaN stored: %v", s.Value())
	}
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("callbacks: %v", got)
	}
}
