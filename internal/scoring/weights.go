package scoring

import (
	"fmt"
	"math"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

// Solar Access Score weights. They sum to 1.0.
const (
	WeightIrradiance     = 0.35
	WeightInverseGrid    = 0.25
	WeightInfrastructure = 0.20
	WeightCost           = 0.20
)

// DegenerateFallback is the normalized value assigned to every row of a
// constant column.
const DegenerateFallback = 0.0

// ScoringColumns are the numeric source columns that feed the score, in
// weighting order.
var ScoringColumns = []string{
	models.ColumnIrradiance,
	models.ColumnGridAccess,
	models.ColumnInfrastructure,
	models.ColumnCost,
}

// RequiredColumns are the columns Compute cannot run without
var RequiredColumns = append([]string{models.ColumnRegion}, ScoringColumns...)

// WeightSet exposes the score weights for display and auditing
type WeightSet struct {
	Irradiance     float64 `json:"irradiance"`
	InverseGrid    float64 `json:"inverse_grid_access"`
	Infrastructure float64 `json:"infrastructure"`
	Cost           float64 `json:"electricity_cost"`
}

// Weights returns the fixed weight set
func Weights() WeightSet {
	return WeightSet{
		Irradiance:     WeightIrradiance,
		InverseGrid:    WeightInverseGrid,
		Infrastructure: WeightInfrastructure,
		Cost:           WeightCost,
	}
}

// Sum returns the total of all weights
func (w WeightSet) Sum() float64 {
	return w.Irradiance + w.InverseGrid + w.Infrastructure + w.Cost
}

// Validate checks that weights are non-negative and sum to 1.0
func (w WeightSet) Validate() error {
	for name, v := range map[string]float64{
		"irradiance":     w.Irradiance,
		"inverse_grid":   w.InverseGrid,
		"infrastructure": w.Infrastructure,
		"cost":           w.Cost,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative: %v", name, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("weights sum to %v, want 1.0", w.Sum())
	}
	return nil
}

// Score combines the normalized features into the Solar Access Score.
// Grid access enters inverted: less access means a stronger case for solar.
func Score(normIrradiance, normGridAccess, normInfrastructure, normCost float64) float64 {
	return WeightIrradiance*normIrradiance +
		WeightInverseGrid*(1-normGridAccess) +
		WeightInfrastructure*normInfrastructure +
		WeightCost*normCost
}
