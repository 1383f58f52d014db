package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RegionRepository reads the region table of a SQLite dataset file
type RegionRepository struct {
	db *sql.DB
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *sql.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// LoadTable reads every row of table into a Dataset, keeping the table's
// column names and rowid order. NULL becomes an empty cell.
func (r *RegionRepository) LoadTable(ctx context.Context, table string) (models.Dataset, error) {
	if !tableNamePattern.MatchString(table) {
		return models.Dataset{}, fmt.Errorf("invalid table name %q", table)
	}

	query := fmt.Sprintf(`SELECT * FROM "%s" ORDER BY rowid`, table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to query table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	for i, c := range columns {
		columns[i] = strings.TrimSpace(c)
	}

	ds := models.Dataset{Columns: columns}
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return models.Dataset{}, fmt.Errorf("failed to scan row %d of %s: %w", ds.Len()+1, table, err)
		}

		row := make([]string, len(columns))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return models.Dataset{}, fmt.Errorf("failed to iterate table %s: %w", table, err)
	}

	return ds, nil
}
