// Package dataset reads the region table from disk. It knows nothing about
// scoring; it only turns a CSV, XLSX or SQLite file into a models.Dataset.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jengzang/solar-site-backend-go/internal/database"
	"github.com/jengzang/solar-site-backend-go/internal/models"
	"github.com/jengzang/solar-site-backend-go/internal/repository"
)

// ErrUnsupportedFormat is returned for a file extension with no reader
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// DefaultTable is the SQLite table read when Options.Table is empty
const DefaultTable = "regions"

// Options selects where inside a container format the table lives
type Options struct {
	// Sheet is the XLSX sheet name; empty means the first sheet.
	Sheet string
	// Table is the SQLite table name; empty means DefaultTable.
	Table string
}

// Format identifies a dataset reader
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// DetectFormat picks a reader from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the dataset at path
func Load(ctx context.Context, path string, opts Options) (models.Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return models.Dataset{}, err
	}

	var ds models.Dataset
	switch format {
	case FormatCSV:
		ds, err = LoadCSVFile(path)
	case FormatXLSX:
		ds, err = LoadXLSXFile(path, opts.Sheet)
	case FormatSQLite:
		ds, err = loadSQLite(ctx, path, opts.Table)
	}
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to load %s dataset %s: %w", format, path, err)
	}

	log.WithFields(log.Fields{
		"path":    path,
		"format":  format,
		"rows":    ds.Len(),
		"columns": len(ds.Columns),
	}).Info("Dataset loaded")
	return ds, nil
}

func loadSQLite(ctx context.Context, path, table string) (models.Dataset, error) {
	if table == "" {
		table = DefaultTable
	}

	db, err := database.Open(ctx, database.Config{Path: path, ReadOnly: true})
	if err != nil {
		return models.Dataset{}, err
	}
	defer db.Close()

	return repository.NewRegionRepository(db).LoadTable(ctx, table)
}

// normalizeHeader trims cells and drops a UTF-8 byte order mark
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}
