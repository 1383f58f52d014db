// Package scoring derives the Solar Access Score for every region of a
// dataset, ranks regions by it and looks single regions up.
//
// Everything here is a pure function of its input. The source Dataset is
// never modified; Compute returns a new AugmentedDataset.
package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jengzang/solar-site-backend-go/internal/models"
	"github.com/jengzang/solar-site-backend-go/internal/stats"
)

// Compute normalizes the four scoring columns over the whole dataset and
// appends the derived fields to every row, keeping input order.
func Compute(ds models.Dataset) (*models.AugmentedDataset, error) {
	cols, err := resolveColumns(ds)
	if err != nil {
		return nil, err
	}
	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	regions, err := parseRegions(ds, cols)
	if err != nil {
		return nil, err
	}

	// Column-major copy of the scoring inputs
	features := make([][]float64, len(ScoringColumns))
	for c := range features {
		features[c] = make([]float64, len(regions))
	}
	for i, r := range regions {
		features[0][i] = r.SolarIrradiance
		features[1][i] = r.GridAccessPercent
		features[2][i] = r.InfrastructureIndex
		features[3][i] = r.ElectricityCost
	}

	bounds := make([]models.ColumnBounds, len(ScoringColumns))
	normalized := make([][]float64, len(ScoringColumns))
	var degenerate []string
	for c, name := range ScoringColumns {
		b := stats.MinMax(features[c])
		bounds[c] = models.ColumnBounds{Column: name, Min: b.Min, Max: b.Max}
		if b.IsConstant() {
			degenerate = append(degenerate, name)
			normalized[c] = constantColumn(len(regions))
			continue
		}
		normalized[c] = stats.NormalizeWith(features[c], b)
	}

	out := make([]models.AugmentedRegion, len(regions))
	for i, r := range regions {
		a := models.AugmentedRegion{
			Region:             r,
			NormIrradiance:     normalized[0][i],
			NormGridAccess:     normalized[1][i],
			NormInfrastructure: normalized[2][i],
			NormCost:           normalized[3][i],
		}
		a.InverseGridAccess = 1 - a.NormGridAccess
		a.SolarAccessScore = Score(a.NormIrradiance, a.NormGridAccess, a.NormInfrastructure, a.NormCost)
		out[i] = a
	}

	return models.NewAugmentedDataset(out, bounds, degenerate), nil
}

func constantColumn(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = DegenerateFallback
	}
	return col
}

// columnSet maps each known column to its position in the source header.
// ruggedness is -1 when the display-only column is absent.
type columnSet struct {
	region         int
	irradiance     int
	gridAccess     int
	infrastructure int
	cost           int
	ruggedness     int
}

func resolveColumns(ds models.Dataset) (columnSet, error) {
	for _, name := range RequiredColumns {
		if ds.ColumnIndex(name) < 0 {
			return columnSet{}, &MissingColumnError{Column: name}
		}
	}
	return columnSet{
		region:         ds.ColumnIndex(models.ColumnRegion),
		irradiance:     ds.ColumnIndex(models.ColumnIrradiance),
		gridAccess:     ds.ColumnIndex(models.ColumnGridAccess),
		infrastructure: ds.ColumnIndex(models.ColumnInfrastructure),
		cost:           ds.ColumnIndex(models.ColumnCost),
		ruggedness:     ds.ColumnIndex(models.ColumnRuggedness),
	}, nil
}

func parseRegions(ds models.Dataset, cols columnSet) ([]models.Region, error) {
	regions := make([]models.Region, 0, ds.Len())
	seen := make(map[string]int, ds.Len())

	for i, row := range ds.Rows {
		rowNum := i + 1

		id := cell(row, cols.region)
		if id == "" {
			return nil, &InvalidValueError{Row: rowNum, Column: models.ColumnRegion, Reason: "missing region id"}
		}
		if first, dup := seen[id]; dup {
			return nil, &InvalidValueError{
				Row:    rowNum,
				Column: models.ColumnRegion,
				Value:  id,
				Reason: fmt.Sprintf("duplicate region id, first seen in row %d", first),
			}
		}
		seen[id] = rowNum

		r := models.Region{RegionID: id}
		var err error
		if r.SolarIrradiance, err = numericCell(row, cols.irradiance, rowNum, models.ColumnIrradiance); err != nil {
			return nil, err
		}
		if r.GridAccessPercent, err = numericCell(row, cols.gridAccess, rowNum, models.ColumnGridAccess); err != nil {
			return nil, err
		}
		if r.InfrastructureIndex, err = numericCell(row, cols.infrastructure, rowNum, models.ColumnInfrastructure); err != nil {
			return nil, err
		}
		if r.ElectricityCost, err = numericCell(row, cols.cost, rowNum, models.ColumnCost); err != nil {
			return nil, err
		}

		if cols.ruggedness >= 0 && cell(row, cols.ruggedness) != "" {
			v, err := numericCell(row, cols.ruggedness, rowNum, models.ColumnRuggedness)
			if err != nil {
				return nil, err
			}
			r.TerrainRuggedness = &v
		}

		regions = append(regions, r)
	}

	return regions, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func numericCell(row []string, idx, rowNum int, column string) (float64, error) {
	raw := cell(row, idx)
	if raw == "" {
		return 0, &InvalidValueError{Row: rowNum, Column: column, Reason: "missing value"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &InvalidValueError{Row: rowNum, Column: column, Value: raw, Reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidValueError{Row: rowNum, Column: column, Value: raw, Reason: "not a finite number"}
	}
	return v, nil
}
