package doubleslider

import "math"

// minValueChanged is the resolution pass run when the lower slider is set.
//
// Checks are exclusive and ordered: minimum distance first, then maximum
// distance. Every corrective write lands on a pair that the nested pass it
// triggers accepts without further correction.
func (d *DoubleSlider) minValueChanged(value float64) {
	if math.IsNaN(value) {
		d.logger.Warnf("⚠️ Ignoring NaN lower value, keeping %v", d.lower)
		value = d.lower
	}
	d.lower = value

	lo, hi := d.bounds()
	minGap, maxGap := d.gaps()
	tol := d.tolerance()

	gap := d.upper - value
	switch {
	case gap < minGap-tol:
		fix := value + minGap
		if fix > hi {
			// the minimum distance wins over the requested lower value
			d.sliderMax.SetValue(hi)
			d.sliderMin.SetValue(hi - minGap)
		} else {
			d.sliderMax.SetValue(fix)
			d.sliderMin.SetValue(d.upper - minGap)
		}
		d.logger.Debugf("🐞 Lower %v too close, range corrected to (%v, %v)", value, d.lower, d.upper)

	case gap > maxGap+tol:
		d.sliderMax.SetValue(value + maxGap)
		d.sliderMin.SetValue(clamp(d.upper-maxGap, lo, hi))
		d.logger.Debugf("🐞 Lower %v too far, range corrected to (%v, %v)", value, d.lower, d.upper)
	}

	d.refresh()
}

// maxValueChanged mirrors minValueChanged for the upper slider.
func (d *DoubleSlider) maxValueChanged(value float64) {
	if math.IsNaN(value) {
		d.logger.Warnf("⚠️ Ignoring NaN upper value, keeping %v", d.upper)
		value = d.upper
	}
	d.upper = value

	lo, hi := d.bounds()
	minGap, maxGap := d.gaps()
	tol := d.tolerance()

	gap := value - d.lower
	switch {
	case gap < minGap-tol:
		fix := value - minGap
		if fix < lo {
			d.sliderMin.SetValue(lo)
			d.sliderMax.SetValue(lo + minGap)
		} else {
			d.sliderMin.SetValue(fix)
			d.sliderMax.SetValue(d.lower + minGap)
		}
		d.logger.Debugf("🐞 Upper %v too close, range corrected to (%v, %v)", value, d.lower, d.upper)

	case gap > maxGap+tol:
		d.sliderMin.SetValue(value - maxGap)
		d.sliderMax.SetValue(clamp(d.lower+maxGap, lo, hi))
		d.logger.Debugf("🐞 Upper %v too far, range corrected to (%v, %v)", value, d.lower, d.upper)
	}

	d.refresh()
}

// bounds returns the domain the values can actually reach. In whole numbers
// mode this is the integer part of the configured domain.
func (d *DoubleSlider) bounds() (float64, float64) {
	lo, hi := d.minValue, d.maxValue
	if d.wholeNumbers && math.Ceil(lo) <= math.Floor(hi) {
		lo, hi = math.Ceil(lo), math.Floor(hi)
	}
	return lo, hi
}

// gaps returns the effective minimum and maximum distance.
//
// The minimum never exceeds the domain span and the maximum never goes below
// the minimum. A maximum of zero or less, or +Inf, means no maximum. In whole
// numbers mode the minimum is rounded up and the maximum rounded down.
func (d *DoubleSlider) gaps() (float64, float64) {
	lo, hi := d.bounds()
	span := math.Max(hi-lo, 0)

	minGap := math.Max(d.minDistance, 0)
	maxGap := d.maxDistance
	if maxGap <= 0 || math.IsInf(maxGap, 1) || math.IsNaN(maxGap) {
		maxGap = span
	}
	if d.wholeNumbers {
		minGap = math.Ceil(minGap)
		maxGap = math.Floor(maxGap)
	}

	minGap = math.Min(minGap, span)
	maxGap = math.Max(maxGap, minGap)
	return minGap, maxGap
}

func (d *DoubleSlider) tolerance() float64 {
	return 1e-9 * math.Max(1, math.Abs(d.maxValue-d.minValue))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
