package scoring

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

var header = []string{
	models.ColumnRegion,
	models.ColumnIrradiance,
	models.ColumnGridAccess,
	models.ColumnInfrastructure,
	models.ColumnCost,
	models.ColumnRuggedness,
}

func threeRegions() models.Dataset {
	return models.Dataset{
		Columns: header,
		Rows: [][]string{
			{"A", "5.0", "20", "0.5", "0.10", "3.2"},
			{"B", "3.0", "80", "0.9", "0.05", "1.1"},
			{"C", "7.0", "50", "0.2", "0.15", "4.8"},
		},
	}
}

func TestComputeReferenceExample(t *testing.T) {
	aug, err := Compute(threeRegions())
	require.NoError(t, err)
	require.Equal(t, 3, aug.Len())

	a, b, c := aug.Regions[0], aug.Regions[1], aug.Regions[2]

	assert.Equal(t, "A", a.RegionID)
	assert.Equal(t, 0.5, a.NormIrradiance)
	assert.Equal(t, 0.0, a.NormGridAccess)
	assert.InDelta(t, 0.428571, a.NormInfrastructure, 1e-6)
	assert.InDelta(t, 0.5, a.NormCost, 1e-9)
	assert.Equal(t, 1.0, a.InverseGridAccess)
	assert.InDelta(t, 0.610714, a.SolarAccessScore, 1e-6)

	assert.Equal(t, 0.0, b.NormIrradiance)
	assert.Equal(t, 1.0, b.NormGridAccess)
	assert.Equal(t, 1.0, b.NormInfrastructure)
	assert.Equal(t, 0.0, b.NormCost)
	assert.InDelta(t, 0.2, b.SolarAccessScore, 1e-9)

	assert.Equal(t, 1.0, c.NormIrradiance)
	assert.Equal(t, 0.5, c.NormGridAccess)
	assert.Equal(t, 0.0, c.NormInfrastructure)
	assert.Equal(t, 1.0, c.NormCost)
	assert.InDelta(t, 0.675, c.SolarAccessScore, 1e-9)

	assert.Equal(t, models.Ranking{"C", "A", "B"}, Rank(aug))
}

func TestComputePreservesRows(t *testing.T) {
	ds := threeRegions()
	aug, err := Compute(ds)
	require.NoError(t, err)

	for i, row := range ds.Rows {
		r := aug.Regions[i]
		assert.Equal(t, row[0], r.RegionID)
		require.NotNil(t, r.TerrainRuggedness)
	}
	assert.Equal(t, 5.0, aug.Regions[0].SolarIrradiance)
	assert.Equal(t, 80.0, aug.Regions[1].GridAccessPercent)
	assert.Equal(t, 0.2, aug.Regions[2].InfrastructureIndex)
	assert.Equal(t, 0.15, aug.Regions[2].ElectricityCost)
	assert.Equal(t, 4.8, *aug.Regions[2].TerrainRuggedness)
	assert.Empty(t, aug.DegenerateColumns)

	// Source must be untouched
	assert.Equal(t, threeRegions(), ds)
}

func TestComputeIsDeterministic(t *testing.T) {
	first, err := Compute(threeRegions())
	require.NoError(t, err)
	second, err := Compute(threeRegions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, Rank(first), Rank(second))
}

func TestComputeNormalizationProperties(t *testing.T) {
	ds := models.Dataset{Columns: header}
	for i := 0; i < 40; i++ {
		ds.Rows = append(ds.Rows, []string{
			fmt.Sprintf("Region_%d", i+1),
			fmt.Sprintf("%.2f", 3.1+float64((i*7)%23)*0.17),
			fmt.Sprintf("%.1f", float64((i*13)%97)+0.5),
			fmt.Sprintf("%.2f", float64((i*5)%11)/10),
			fmt.Sprintf("%.3f", 0.05+float64((i*3)%17)/100),
			fmt.Sprintf("%.1f", float64(i%9)),
		})
	}

	aug, err := Compute(ds)
	require.NoError(t, err)

	inputs := func(r models.AugmentedRegion) []float64 {
		return []float64{r.SolarIrradiance, r.GridAccessPercent, r.InfrastructureIndex, r.ElectricityCost}
	}
	norms := func(r models.AugmentedRegion) []float64 {
		return []float64{r.NormIrradiance, r.NormGridAccess, r.NormInfrastructure, r.NormCost}
	}

	for c, b := range aug.Bounds {
		require.False(t, b.Degenerate(), b.Column)
		for _, r := range aug.Regions {
			v, n := inputs(r)[c], norms(r)[c]
			assert.GreaterOrEqual(t, n, 0.0)
			assert.LessOrEqual(t, n, 1.0)
			if v == b.Min {
				assert.Equal(t, 0.0, n, "%s min must normalize to 0", b.Column)
			}
			if v == b.Max {
				assert.Equal(t, 1.0, n, "%s max must normalize to 1", b.Column)
			}
		}
	}

	for _, r := range aug.Regions {
		want := 0.35*r.NormIrradiance + 0.25*(1-r.NormGridAccess) + 0.20*r.NormInfrastructure + 0.20*r.NormCost
		assert.InDelta(t, want, r.SolarAccessScore, 1e-12, r.RegionID)
		assert.Equal(t, 1-r.NormGridAccess, r.InverseGridAccess)
	}
}

func TestComputeDegenerateColumn(t *testing.T) {
	ds := models.Dataset{
		Columns: header,
		Rows: [][]string{
			{"A", "5.0", "50", "0.5", "0.10", "1"},
			{"B", "5.0", "20", "0.9", "0.05", "2"},
			{"C", "5.0", "80", "0.2", "0.15", "3"},
		},
	}

	aug, err := Compute(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{models.ColumnIrradiance}, aug.DegenerateColumns)
	assert.True(t, aug.Bounds[0].Degenerate())

	for _, r := range aug.Regions {
		assert.Equal(t, DegenerateFallback, r.NormIrradiance)
		assert.False(t, r.SolarAccessScore != r.SolarAccessScore, "score must not be NaN")
	}
}

func TestComputeSingleRow(t *testing.T) {
	ds := models.Dataset{
		Columns: header,
		Rows:    [][]string{{"Only", "4.2", "60", "0.7", "0.12", ""}},
	}

	aug, err := Compute(ds)
	require.NoError(t, err)
	assert.Len(t, aug.DegenerateColumns, 4)

	r := aug.Regions[0]
	assert.Nil(t, r.TerrainRuggedness)
	assert.Equal(t, 1.0, r.InverseGridAccess)
	assert.InDelta(t, WeightInverseGrid, r.SolarAccessScore, 1e-12)
}

func TestComputeWithoutRuggednessColumn(t *testing.T) {
	ds := models.Dataset{
		Columns: header[:5],
		Rows: [][]string{
			{"A", "5.0", "20", "0.5", "0.10"},
			{"B", "3.0", "80", "0.9", "0.05"},
		},
	}

	aug, err := Compute(ds)
	require.NoError(t, err)
	for _, r := range aug.Regions {
		assert.Nil(t, r.TerrainRuggedness)
	}
}

func TestComputeErrors(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		for _, missing := range RequiredColumns {
			var cols []string
			for _, c := range header {
				if c != missing {
					cols = append(cols, c)
				}
			}

			_, err := Compute(models.Dataset{Columns: cols, Rows: [][]string{{"x"}}})
			var mce *MissingColumnError
			require.True(t, errors.As(err, &mce), "column %s", missing)
			assert.Equal(t, missing, mce.Column)
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		_, err := Compute(models.Dataset{Columns: header})
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	cases := []struct {
		name   string
		row    []string
		column string
	}{
		{"non numeric irradiance", []string{"B", "sunny", "80", "0.9", "0.05", "1"}, models.ColumnIrradiance},
		{"missing grid access", []string{"B", "3.0", "", "0.9", "0.05", "1"}, models.ColumnGridAccess},
		{"nan infrastructure", []string{"B", "3.0", "80", "NaN", "0.05", "1"}, models.ColumnInfrastructure},
		{"infinite cost", []string{"B", "3.0", "80", "0.9", "+Inf", "1"}, models.ColumnCost},
		{"short row", []string{"B", "3.0", "80"}, models.ColumnInfrastructure},
		{"empty region id", []string{" ", "3.0", "80", "0.9", "0.05", "1"}, models.ColumnRegion},
		{"duplicate region id", []string{"A", "3.0", "80", "0.9", "0.05", "1"}, models.ColumnRegion},
		{"bad ruggedness", []string{"B", "3.0", "80", "0.9", "0.05", "steep"}, models.ColumnRuggedness},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := models.Dataset{
				Columns: header,
				Rows: [][]string{
					{"A", "5.0", "20", "0.5", "0.10", "3.2"},
					tc.row,
				},
			}

			aug, err := Compute(ds)
			assert.Nil(t, aug)

			var ive *InvalidValueError
			require.True(t, errors.As(err, &ive), "got %v", err)
			assert.Equal(t, 2, ive.Row)
			assert.Equal(t, tc.column, ive.Column)
		})
	}
}

func TestWeights(t *testing.T) {
	w := Weights()
	assert.Equal(t, 0.35, w.Irradiance)
	assert.Equal(t, 0.25, w.InverseGrid)
	assert.Equal(t, 0.20, w.Infrastructure)
	assert.Equal(t, 0.20, w.Cost)
	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
	assert.NoError(t, w.Validate())

	w.Cost = 0.5
	assert.Error(t, w.Validate())

	assert.Error(t, WeightSet{Irradiance: 1.2, InverseGrid: -0.2}.Validate())
}
