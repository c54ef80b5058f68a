package filter

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// AmountRange describes a lower and upper bound for Decimal values.
// Either bound is optional; a nil bound does not restrict.
type AmountRange struct {
	Low  *decimal.Decimal
	High *decimal.Decimal
}

// Lower returns the lower bound following the "comma ok" idiom.
func (r AmountRange) Lower() (decimal.Decimal, bool) {
	if r.Low == nil {
		return decimal.Decimal{}, false
	}
	return *r.Low, true
}

// Upper returns the upper bound following the "comma ok" idiom.
func (r AmountRange) Upper() (decimal.Decimal, bool) {
	if r.High == nil {
		return decimal.Decimal{}, false
	}
	return *r.High, true
}

// Contains reports whether d lies in the range, bounds included.
func (r AmountRange) Contains(d decimal.Decimal) bool {
	if low, ok := r.Lower(); ok && d.LessThan(low) {
		return false
	}
	if high, ok := r.Upper(); ok && d.GreaterThan(high) {
		return false
	}
	return true
}

// String renders the range as a filter expression on "amount".
func (r AmountRange) String() string {
	var terms []string
	if low, ok := r.Lower(); ok {
		terms = append(terms, "amount >= "+low.String())
	}
	if high, ok := r.Upper(); ok {
		terms = append(terms, "amount <= "+high.String())
	}
	if len(terms) == 0 {
		return "any amount"
	}
	return strings.Join(terms, " and ")
}

// Amount turns a double slider selection into an amount filter, rounded to
// a fixed number of decimal places. Register Update as a value changed
// listener.
type Amount struct {
	mu     sync.RWMutex
	places int32
	rng    AmountRange
}

func NewAmount(places int32) *Amount {
	if places < 0 {
		places = 0
	}
	return &Amount{places: places}
}

func (a *Amount) Update(lower, upper float64) {
	low := decimal.NewFromFloat(lower).Round(a.places)
	high := decimal.NewFromFloat(upper).Round(a.places)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.rng = AmountRange{Low: &low, High: &high}
}

// Range returns a copy of the current filter. Both bounds are nil until the
// first Update.
func (a *Amount) Range() AmountRange {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.rng
}

// Match filters amounts through the current range.
func (a *Amount) Match(amounts ...decimal.Decimal) []decimal.Decimal {
	rng := a.Range()
	var out []decimal.Decimal
	for _, d := range amounts {
		if rng.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}
