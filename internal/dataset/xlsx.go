package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

// LoadXLSXFile reads one sheet of a workbook. The first non-empty row is the
// header; fully empty rows are skipped.
func LoadXLSXFile(path, sheet string) (models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Dataset{}, err
	}
	defer f.Close()

	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (models.Dataset, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.Dataset{}, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Dataset{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var ds models.Dataset
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if ds.Columns == nil {
			ds.Columns = normalizeHeader(row)
			continue
		}
		ds.Rows = append(ds.Rows, row)
	}

	if ds.Columns == nil {
		return models.Dataset{}, fmt.Errorf("sheet %q is empty", sheet)
	}
	return ds, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
