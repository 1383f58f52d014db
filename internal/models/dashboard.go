package models

import "time"

// RankedRegion is one entry of the ranking view
type RankedRegion struct {
	Rank             int     `json:"rank"` // 1-based
	RegionID         string  `json:"region_id"`
	SolarAccessScore float64 `json:"solar_access_score"`
}

// MetricCard is a single labelled value shown for the selected region
type MetricCard struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Display string   `json:"display"`
	Value   *float64 `json:"value"`
	Unit    string   `json:"unit,omitempty"`
}

// BarChart is the ranked bar chart payload. Bars are in rank order.
type BarChart struct {
	Title string     `json:"title"`
	XAxis string     `json:"x_axis"`
	YAxis string     `json:"y_axis"`
	Bars  []BarPoint `json:"bars"`
	Limit int        `json:"limit"`
	Total int        `json:"total"`
}

// BarPoint is one bar
type BarPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RadarChart compares one region's raw metrics with the dataset maxima
type RadarChart struct {
	Title    string      `json:"title"`
	RegionID string      `json:"region_id"`
	Axes     []RadarAxis `json:"axes"`
}

// RadarAxis is one spoke of the radar chart
type RadarAxis struct {
	Metric    string  `json:"metric"`
	Column    string  `json:"column"`
	Selected  float64 `json:"selected"`
	Benchmark float64 `json:"benchmark"`
	// Missing is set when the region has no value for this metric
	Missing bool `json:"missing,omitempty"`
}

// StrategicSummary is the narrative recommendation block
type StrategicSummary struct {
	Title         string   `json:"title"`
	TopCandidates []string `json:"top_candidates"`
	Points        []string `json:"points"`
}

// ColumnSummary describes the distribution of one numeric column
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// ScoringPolicy documents how the score was derived
type ScoringPolicy struct {
	Weights           map[string]float64 `json:"weights"`
	WeightSum         float64            `json:"weight_sum"`
	DegenerateValue   float64            `json:"degenerate_fallback"`
	DegenerateColumns []string           `json:"degenerate_columns"`
	Bounds            []ColumnBounds     `json:"bounds"`
}

// Dashboard bundles every view for one selected region
type Dashboard struct {
	Region AugmentedRegion `json:"region"`
	Rank   int             `json:"rank"`
	// ScorePercentile is the share of regions scoring at or below this one (0-100)
	ScorePercentile float64          `json:"score_percentile"`
	Metrics         []MetricCard     `json:"metrics"`
	TopChart        BarChart         `json:"top_chart"`
	Radar           RadarChart       `json:"radar"`
	Summary         StrategicSummary `json:"summary"`
	LoadedAt        time.Time        `json:"loaded_at"`
}
