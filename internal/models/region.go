package models

// Source column names. These are part of the input file contract.
const (
	ColumnRegion         = "Region"
	ColumnIrradiance     = "Solar_Irradiance_kWh_m2_day"
	ColumnGridAccess     = "Grid_Access_Percent"
	ColumnInfrastructure = "Infrastructure_Index"
	ColumnCost           = "Electricity_Cost_USD_per_kWh"
	ColumnRuggedness     = "Terrain_Ruggedness_Score"
)

// Dataset is the raw table as read from the input file.
// An empty cell (or SQL NULL) is treated as a missing value.
type Dataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of a column, or -1 if absent
func (d Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Len returns the number of data rows
func (d Dataset) Len() int {
	return len(d.Rows)
}

// Region is one candidate deployment site
type Region struct {
	RegionID string `json:"region_id" db:"Region"`

	// kWh/m²/day
	SolarIrradiance float64 `json:"solar_irradiance" db:"Solar_Irradiance_kWh_m2_day"`
	// 0-100
	GridAccessPercent   float64 `json:"grid_access_percent" db:"Grid_Access_Percent"`
	InfrastructureIndex float64 `json:"infrastructure_index" db:"Infrastructure_Index"`
	// USD/kWh
	ElectricityCost float64 `json:"electricity_cost" db:"Electricity_Cost_USD_per_kWh"`

	// Display only, nil when the source has no value
	TerrainRuggedness *float64 `json:"terrain_ruggedness,omitempty" db:"Terrain_Ruggedness_Score"`
}

// AugmentedRegion is a Region plus the normalized features and the derived score
type AugmentedRegion struct {
	Region

	NormIrradiance     float64 `json:"norm_irradiance"`
	NormGridAccess     float64 `json:"norm_grid_access"`
	NormInfrastructure float64 `json:"norm_infrastructure"`
	NormCost           float64 `json:"norm_cost"`
	InverseGridAccess  float64 `json:"inverse_grid_access"`
	SolarAccessScore   float64 `json:"solar_access_score"`
}

// ColumnBounds holds the min/max observed for one scoring column
type ColumnBounds struct {
	Column string  `json:"column"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Degenerate reports whether the column is constant across the dataset
func (b ColumnBounds) Degenerate() bool {
	return b.Max == b.Min
}

// AugmentedDataset is the scored view of a Dataset, rows in input order
type AugmentedDataset struct {
	Regions           []AugmentedRegion `json:"regions"`
	Bounds            []ColumnBounds    `json:"bounds"`
	DegenerateColumns []string          `json:"degenerate_columns,omitempty"`

	index map[string]int
}

// NewAugmentedDataset builds the id index over regions.
// Region ids must already be unique.
func NewAugmentedDataset(regions []AugmentedRegion, bounds []ColumnBounds, degenerate []string) *AugmentedDataset {
	index := make(map[string]int, len(regions))
	for i, r := range regions {
		index[r.RegionID] = i
	}
	return &AugmentedDataset{
		Regions:           regions,
		Bounds:            bounds,
		DegenerateColumns: degenerate,
		index:             index,
	}
}

// IndexOf returns the input position of a region id
func (a *AugmentedDataset) IndexOf(regionID string) (int, bool) {
	if a == nil || a.index == nil {
		return -1, false
	}
	i, ok := a.index[regionID]
	return i, ok
}

// Len returns the number of rows
func (a *AugmentedDataset) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Regions)
}

// Ranking is the ordered list of region ids, best score first
type Ranking []string
