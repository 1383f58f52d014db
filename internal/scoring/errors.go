package scoring

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when the dataset has no rows
	ErrEmptyDataset = errors.New("dataset has no rows")
	// ErrNotFound matches any *NotFoundError
	ErrNotFound = errors.New("region not found")
)

// MissingColumnError reports a required column absent from the dataset
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// InvalidValueError reports a cell that cannot be used for scoring.
// Row is 1-based over data rows, header excluded.
type InvalidValueError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("row %d column %q: %s (value %q)", e.Row, e.Column, e.Reason, e.Value)
}

// NotFoundError reports a lookup for an id absent from the dataset
type NotFoundError struct {
	RegionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("region %q not found", e.RegionID)
}

// Is lets errors.Is(err, ErrNotFound) match
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
