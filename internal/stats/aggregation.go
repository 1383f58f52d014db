package stats

import (
	"math"
	"sort"
)

// Bounds is the observed range of a column
type Bounds struct {
	Min float64
	Max float64
}

// Range returns max - min
func (b Bounds) Range() float64 {
	return b.Max - b.Min
}

// IsConstant reports whether every value in the column was equal
func (b Bounds) IsConstant() bool {
	return b.Max == b.Min
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance calculates the population variance
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(values))
}

// StdDev calculates the population standard deviation
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Median calculates the median value
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}

// Max returns the maximum value
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// MinMax returns both bounds in a single pass
func MinMax(values []float64) Bounds {
	if len(values) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b
}

// Quantile calculates the q-th quantile (0-1) using linear interpolation
// between closest ranks. The input slice is not modified.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := q * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// NormalizeWith rescales values to [0, 1] with precomputed bounds.
// A constant column maps every value to 0.
func NormalizeWith(values []float64, b Bounds) []float64 {
	result := make([]float64, len(values))
	if b.IsConstant() {
		return result
	}

	rangeVal := b.Range()
	for i, v := range values {
		switch v {
		case b.Min:
			result[i] = 0
		case b.Max:
			result[i] = 1
		default:
			result[i] = clamp01((v - b.Min) / rangeVal)
		}
	}
	return result
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
