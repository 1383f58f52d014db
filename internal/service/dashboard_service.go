package service

import (
	"fmt"

	"github.com/jengzang/solar-site-backend-go/internal/models"
	"github.com/jengzang/solar-site-backend-go/internal/scoring"
	"github.com/jengzang/solar-site-backend-go/internal/stats"
)

// DefaultTopN is the number of bars in the ranking chart
const DefaultTopN = 10

// SummaryCandidates is how many leading regions the summary names
const SummaryCandidates = 3

// metric describes one displayed raw column
type metric struct {
	label  string
	column string
	get    func(models.Region) (float64, bool)
}

// radarMetrics is the spoke order of the radar chart
var radarMetrics = []metric{
	{label: "Solar Irradiance", column: models.ColumnIrradiance,
		get: func(r models.Region) (float64, bool) { return r.SolarIrradiance, true }},
	{label: "Grid Access", column: models.ColumnGridAccess,
		get: func(r models.Region) (float64, bool) { return r.GridAccessPercent, true }},
	{label: "Electricity Cost", column: models.ColumnCost,
		get: func(r models.Region) (float64, bool) { return r.ElectricityCost, true }},
	{label: "Infrastructure", column: models.ColumnInfrastructure,
		get: func(r models.Region) (float64, bool) { return r.InfrastructureIndex, true }},
	{label: "Ruggedness", column: models.ColumnRuggedness,
		get: func(r models.Region) (float64, bool) {
			if r.TerrainRuggedness == nil {
				return 0, false
			}
			return *r.TerrainRuggedness, true
		}},
}

// DashboardService builds the dashboard views from a scored session.
// Nothing here recomputes scores; every method is a read.
type DashboardService struct {
	session    *Session
	topN       int
	benchmarks map[string]float64
	hasColumn  map[string]bool
	scores     []float64
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(session *Session, topN int) *DashboardService {
	if topN <= 0 {
		topN = DefaultTopN
	}

	benchmarks := make(map[string]float64, len(radarMetrics))
	hasColumn := make(map[string]bool, len(radarMetrics))
	for _, m := range radarMetrics {
		values := columnValues(session.Augmented, m)
		hasColumn[m.column] = len(values) > 0
		benchmarks[m.column] = stats.Max(values)
	}

	scores := make([]float64, 0, session.Augmented.Len())
	for _, r := range session.Augmented.Regions {
		scores = append(scores, r.SolarAccessScore)
	}

	return &DashboardService{
		session:    session,
		topN:       topN,
		benchmarks: benchmarks,
		hasColumn:  hasColumn,
		scores:     scores,
	}
}

// Session returns the underlying session
func (s *DashboardService) Session() *Session {
	return s.session
}

// Regions returns every augmented region in input order
func (s *DashboardService) Regions() []models.AugmentedRegion {
	out := make([]models.AugmentedRegion, len(s.session.Augmented.Regions))
	copy(out, s.session.Augmented.Regions)
	for i := range out {
		if out[i].TerrainRuggedness != nil {
			v := *out[i].TerrainRuggedness
			out[i].TerrainRuggedness = &v
		}
	}
	return out
}

// Ranking returns the leading limit regions; limit <= 0 returns all
func (s *DashboardService) Ranking(limit int) []models.RankedRegion {
	ids := s.session.Ranking
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	out := make([]models.RankedRegion, 0, len(ids))
	for i, id := range ids {
		rec, err := scoring.Lookup(s.session.Augmented, id)
		if err != nil {
			continue
		}
		out = append(out, models.RankedRegion{
			Rank:             i + 1,
			RegionID:         id,
			SolarAccessScore: rec.SolarAccessScore,
		})
	}
	return out
}

// Region looks a region up by id
func (s *DashboardService) Region(regionID string) (models.AugmentedRegion, error) {
	return scoring.Lookup(s.session.Augmented, regionID)
}

// DefaultRegion is the selection used when none is given: the first region
// in input order.
func (s *DashboardService) DefaultRegion() (models.AugmentedRegion, error) {
	if s.session.Augmented.Len() == 0 {
		return models.AugmentedRegion{}, scoring.ErrEmptyDataset
	}
	return scoring.Lookup(s.session.Augmented, s.session.Augmented.Regions[0].RegionID)
}

// Metrics returns the six metric cards of a region
func (s *DashboardService) Metrics(regionID string) ([]models.MetricCard, error) {
	rec, err := s.Region(regionID)
	if err != nil {
		return nil, err
	}
	return metricCards(rec), nil
}

func metricCards(rec models.AugmentedRegion) []models.MetricCard {
	value := func(v float64) *float64 { return &v }

	ruggedness := models.MetricCard{
		Key:     "terrain_ruggedness",
		Label:   "Terrain Ruggedness",
		Display: "n/a",
	}
	if rec.TerrainRuggedness != nil {
		ruggedness.Value = value(*rec.TerrainRuggedness)
		ruggedness.Display = formatValue(*rec.TerrainRuggedness)
	}

	return []models.MetricCard{
		{
			Key:     "solar_irradiance",
			Label:   "Solar Irradiance",
			Display: formatValue(rec.SolarIrradiance) + " kWh/m²/day",
			Value:   value(rec.SolarIrradiance),
			Unit:    "kWh/m²/day",
		},
		{
			Key:     "grid_access_percent",
			Label:   "Grid Access",
			Display: formatValue(rec.GridAccessPercent) + "%",
			Value:   value(rec.GridAccessPercent),
			Unit:    "%",
		},
		{
			Key:     "electricity_cost",
			Label:   "Electricity Cost",
			Display: "$" + formatValue(rec.ElectricityCost) + " / kWh",
			Value:   value(rec.ElectricityCost),
			Unit:    "USD/kWh",
		},
		{
			Key:     "infrastructure_index",
			Label:   "Infrastructure Index",
			Display: formatValue(rec.InfrastructureIndex),
			Value:   value(rec.InfrastructureIndex),
		},
		ruggedness,
		{
			Key:     "solar_access_score",
			Label:   "Solar Access Score",
			Display: formatRounded(rec.SolarAccessScore, 3),
			Value:   value(rec.SolarAccessScore),
		},
	}
}

// TopChart returns the ranking bar chart for the leading n regions.
// n <= 0 uses the configured default.
func (s *DashboardService) TopChart(n int) models.BarChart {
	if n <= 0 {
		n = s.topN
	}

	ranked := s.Ranking(n)
	bars := make([]models.BarPoint, len(ranked))
	for i, r := range ranked {
		bars[i] = models.BarPoint{Label: r.RegionID, Value: r.SolarAccessScore}
	}

	return models.BarChart{
		Title: fmt.Sprintf("Top %d Solar Suitability Rankings", n),
		XAxis: "Solar Access Score",
		YAxis: "Region",
		Bars:  bars,
		Limit: n,
		Total: s.session.Augmented.Len(),
	}
}

// Radar compares a region's raw metrics with the dataset column maxima
func (s *DashboardService) Radar(regionID string) (models.RadarChart, error) {
	rec, err := s.Region(regionID)
	if err != nil {
		return models.RadarChart{}, err
	}

	axes := make([]models.RadarAxis, 0, len(radarMetrics))
	for _, m := range radarMetrics {
		v, ok := m.get(rec.Region)
		axes = append(axes, models.RadarAxis{
			Metric:    m.label,
			Column:    m.column,
			Selected:  v,
			Benchmark: s.benchmarks[m.column],
			Missing:   !ok,
		})
	}

	return models.RadarChart{
		Title:    "Region Profile vs Benchmark",
		RegionID: rec.RegionID,
		Axes:     axes,
	}, nil
}

// Summary returns the strategic recommendation. The first point names the
// leading regions of the ranking; the rest is fixed guidance.
func (s *DashboardService) Summary() models.StrategicSummary {
	n := SummaryCandidates
	if n > len(s.session.Ranking) {
		n = len(s.session.Ranking)
	}
	top := append([]string(nil), s.session.Ranking[:n]...)

	return models.StrategicSummary{
		Title:         "Strategic Summary",
		TopCandidates: top,
		Points: []string{
			fmt.Sprintf("%s are top candidates for solar pilot deployment based on high Solar Access Scores.", joinNames(top)),
			"These areas combine high irradiance, elevated energy cost, and limited grid access.",
			"Next step: Validate on-ground logistics, community readiness, and policy alignment.",
		},
	}
}

// ColumnStats summarizes every numeric column present in the dataset
func (s *DashboardService) ColumnStats() []models.ColumnSummary {
	out := make([]models.ColumnSummary, 0, len(radarMetrics))
	for _, m := range radarMetrics {
		if !s.hasColumn[m.column] {
			continue
		}
		sum := stats.Summarize(columnValues(s.session.Augmented, m))
		out = append(out, models.ColumnSummary{
			Column: m.column,
			Count:  sum.Count,
			Min:    sum.Min,
			Q1:     sum.Q1,
			Median: sum.Median,
			Q3:     sum.Q3,
			Max:    sum.Max,
			Mean:   sum.Mean,
			StdDev: sum.StdDev,
		})
	}
	return out
}

// Policy reports the weights, the constant-column fallback and the bounds
// used to normalize this dataset.
func (s *DashboardService) Policy() models.ScoringPolicy {
	w := scoring.Weights()
	degenerate := append([]string{}, s.session.Augmented.DegenerateColumns...)
	bounds := append([]models.ColumnBounds(nil), s.session.Augmented.Bounds...)

	return models.ScoringPolicy{
		Weights: map[string]float64{
			models.ColumnIrradiance:     w.Irradiance,
			"Inverse_Grid_Access":       w.InverseGrid,
			models.ColumnInfrastructure: w.Infrastructure,
			models.ColumnCost:           w.Cost,
		},
		WeightSum:         w.Sum(),
		DegenerateValue:   scoring.DegenerateFallback,
		DegenerateColumns: degenerate,
		Bounds:            bounds,
	}
}

// Dashboard assembles every view for a region. An empty id selects the
// default region.
func (s *DashboardService) Dashboard(regionID string) (*models.Dashboard, error) {
	var rec models.AugmentedRegion
	var err error
	if regionID == "" {
		rec, err = s.DefaultRegion()
	} else {
		rec, err = s.Region(regionID)
	}
	if err != nil {
		return nil, err
	}

	radar, err := s.Radar(rec.RegionID)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Region:          rec,
		Rank:            s.session.Position(rec.RegionID),
		ScorePercentile: stats.PercentileRank(s.scores, rec.SolarAccessScore),
		Metrics:         metricCards(rec),
		TopChart:        s.TopChart(0),
		Radar:           radar,
		Summary:         s.Summary(),
		LoadedAt:        s.session.LoadedAt,
	}, nil
}

func columnValues(aug *models.AugmentedDataset, m metric) []float64 {
	values := make([]float64, 0, aug.Len())
	for _, r := range aug.Regions {
		if v, ok := m.get(r.Region); ok {
			values = append(values, v)
		}
	}
	return values
}
