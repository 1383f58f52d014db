package scoring

import (
	"sort"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

// Rank orders region ids by descending Solar Access Score.
// Equal scores keep their input order.
func Rank(aug *models.AugmentedDataset) models.Ranking {
	if aug.Len() == 0 {
		return models.Ranking{}
	}

	order := make([]int, aug.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return aug.Regions[order[i]].SolarAccessScore > aug.Regions[order[j]].SolarAccessScore
	})

	ranking := make(models.Ranking, len(order))
	for i, idx := range order {
		ranking[i] = aug.Regions[idx].RegionID
	}
	return ranking
}

// Lookup returns a copy of the augmented record for a region id
func Lookup(aug *models.AugmentedDataset, regionID string) (models.AugmentedRegion, error) {
	idx, ok := aug.IndexOf(regionID)
	if !ok {
		return models.AugmentedRegion{}, &NotFoundError{RegionID: regionID}
	}

	rec := aug.Regions[idx]
	if rec.TerrainRuggedness != nil {
		v := *rec.TerrainRuggedness
		rec.TerrainRuggedness = &v
	}
	return rec, nil
}
