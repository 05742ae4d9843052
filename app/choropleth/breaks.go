package choropleth

import (
	"math"
	"sort"
)

// DefaultClasses is the number of color bands of a map.
const DefaultClasses = 5

// Breaks returns ascending, duplicate-free class breakpoints for the
// given values: 0, then n-1 evenly spaced breakpoints and the maximum
// value, all rounded up to a base derived from the magnitude of the
// value range.
//
// When there are no values or all of them are equal, it returns n+1
// zeros.
func Breaks(values []float64, n int) []float64 {
	if n < 1 {
		n = DefaultClasses
	}

	min, max, ok := bounds(values)
	span := max - min
	if !ok || span == 0 {
		return make([]float64, n+1)
	}

	base := roundingBase(span)
	width := math.Ceil(span/float64(n)/base) * base

	classes := make([]float64, 0, n+1)
	classes = append(classes, 0)
	for i := 1; i < n; i++ {
		classes = append(classes, float64(i)*width)
	}
	classes = append(classes, max)

	for i, c := range classes {
		classes[i] = math.Ceil(c/base) * base
	}

	return uniqueSorted(classes)
}

// roundingBase is the power of ten of the span, or half of it for
// spans that are less than three times that power.
func roundingBase(span float64) float64 {
	magnitude := math.Pow(10, math.Trunc(math.Log10(span)))
	if span/magnitude >= 3 {
		return magnitude
	}

	half := math.Floor(magnitude / 2)
	if half == 0 {
		// magnitudes of 1 or less do not have a whole half
		half = magnitude / 2
	}

	return half
}

func bounds(values []float64) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	return min, max, ok
}

func uniqueSorted(ff []float64) []float64 {
	sort.Float64s(ff)

	result := ff[:0]
	for i, f := range ff {
		if i > 0 && f == ff[i-1] {
			continue
		}
		result = append(result, f)
	}

	return result
}
