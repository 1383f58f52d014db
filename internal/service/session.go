package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jengzang/solar-site-backend-go/internal/dataset"
	"github.com/jengzang/solar-site-backend-go/internal/models"
	"github.com/jengzang/solar-site-backend-go/internal/scoring"
)

// Session holds everything derived from one dataset load. It is built once
// and only read afterwards, so it can be shared by concurrent requests.
type Session struct {
	Source    string
	Dataset   models.Dataset
	Augmented *models.AugmentedDataset
	Ranking   models.Ranking
	LoadedAt  time.Time

	// 1-based rank position per region id
	positions map[string]int
}

// LoadSession reads the dataset at path and scores it
func LoadSession(ctx context.Context, path string, opts dataset.Options) (*Session, error) {
	ds, err := dataset.Load(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return NewSession(ds, path)
}

// NewSession scores and ranks an already parsed dataset
func NewSession(ds models.Dataset, source string) (*Session, error) {
	aug, err := scoring.Compute(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to score dataset %s: %w", source, err)
	}
	ranking := scoring.Rank(aug)

	positions := make(map[string]int, len(ranking))
	for i, id := range ranking {
		positions[id] = i + 1
	}

	entry := log.WithFields(log.Fields{
		"source":  source,
		"regions": aug.Len(),
	})
	for _, col := range aug.DegenerateColumns {
		entry.WithField("column", col).Warnf("Constant column, normalized to %v for every region", scoring.DegenerateFallback)
	}
	if len(ranking) > 0 {
		entry = entry.WithField("top_region", ranking[0])
	}
	entry.Info("Dataset scored")

	return &Session{
		Source:    source,
		Dataset:   ds,
		Augmented: aug,
		Ranking:   ranking,
		LoadedAt:  time.Now().UTC(),
		positions: positions,
	}, nil
}

// Position returns the 1-based rank of a region, or 0 if unknown
func (s *Session) Position(regionID string) int {
	return s.positions[regionID]
}
