package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

// LoadCSVFile reads a CSV file with a header row
func LoadCSVFile(path string) (models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Dataset{}, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses CSV data into a Dataset. Every data row must have as many
// fields as the header.
func ReadCSV(r io.Reader) (models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return models.Dataset{}, errors.New("empty CSV: no header row")
	}
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	ds := models.Dataset{Columns: normalizeHeader(header)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Dataset{}, fmt.Errorf("failed to read CSV row %d: %w", ds.Len()+1, err)
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}
