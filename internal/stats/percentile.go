package stats

import "sort"

// Summary is the five-number summary of a column plus its mean
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// PercentileRank returns the percentage of values less than or equal to value
func PercentileRank(values []float64, value float64) float64 {
	if len(values) == 0 {
		return 0
	}

	count := 0
	for _, v := range values {
		if v <= value {
			count++
		}
	}
	return float64(count) / float64(len(values)) * 100.0
}

// FiveNumberSummary returns the five-number summary (min, Q1, median, Q3, max)
func FiveNumberSummary(values []float64) (min, q1, median, q3, max float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min = sorted[0]
	max = sorted[len(sorted)-1]
	q1 = Quantile(sorted, 0.25)
	median = Median(sorted)
	q3 = Quantile(sorted, 0.75)

	return
}

// Summarize builds a Summary for a column
func Summarize(values []float64) Summary {
	min, q1, median, q3, max := FiveNumberSummary(values)
	return Summary{
		Count:  len(values),
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
		Mean:   Mean(values),
		StdDev: StdDev(values),
	}
}
