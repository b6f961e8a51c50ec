package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emiliopalmerini/streamstats/internal/domain"
)

// Required export columns.
const (
	ColumnProfileName = "Profile Name"
	ColumnStartTime   = "Start Time"
	ColumnDuration    = "Duration"
)

var requiredColumns = []string{ColumnProfileName, ColumnStartTime, ColumnDuration}

// RowError reports the data row (1-based, header excluded) that failed to load.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

type columnIndex struct {
	profile  int
	start    int
	duration int
}

// ParseActivity reads a viewing activity CSV and returns one record per data
// row. The first malformed row aborts the load and no records are returned.
func ParseActivity(r io.Reader) ([]domain.ViewingRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input, header row required", domain.ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.ViewingRecord, 0, 256)
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}

		rec, err := parseRow(fields, idx, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// ParseActivityFile opens path and parses it with ParseActivity.
func ParseActivityFile(path string) ([]domain.ViewingRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open activity file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ParseActivity(file)
}

func indexColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	for _, col := range requiredColumns {
		if _, ok := positions[col]; !ok {
			return columnIndex{}, fmt.Errorf("%w: %q", domain.ErrMissingColumn, col)
		}
	}

	return columnIndex{
		profile:  positions[ColumnProfileName],
		start:    positions[ColumnStartTime],
		duration: positions[ColumnDuration],
	}, nil
}

func parseRow(fields []string, idx columnIndex, row int) (domain.ViewingRecord, error) {
	field := func(i int, column string) (string, error) {
		if i >= len(fields) {
			return "", &RowError{Row: row, Column: column, Err: domain.ErrMissingColumn}
		}
		return fields[i], nil
	}

	profile, err := field(idx.profile, ColumnProfileName)
	if err != nil {
		return domain.ViewingRecord{}, err
	}
	if strings.TrimSpace(profile) == "" {
		return domain.ViewingRecord{}, &RowError{Row: row, Column: ColumnProfileName, Err: domain.ErrMissingProfile}
	}

	rawStart, err := field(idx.start, ColumnStartTime)
	if err != nil {
		return domain.ViewingRecord{}, err
	}
	start, err := domain.ParseStartTime(rawStart)
	if err != nil {
		return domain.ViewingRecord{}, &RowError{Row: row, Column: ColumnStartTime, Err: err}
	}

	rawDuration, err := field(idx.duration, ColumnDuration)
	if err != nil {
		return domain.ViewingRecord{}, err
	}
	seconds, err := domain.ParseDuration(rawDuration)
	if err != nil {
		return domain.ViewingRecord{}, &RowError{Row: row, Column: ColumnDuration, Err: err}
	}

	return domain.NewViewingRecord(profile, start, seconds), nil
}

// IsLoadError reports whether err is one of the load error kinds.
func IsLoadError(err error) bool {
	var csvErr *csv.ParseError
	return errors.As(err, &csvErr) ||
		errors.Is(err, domain.ErrMissingColumn) ||
		errors.Is(err, domain.ErrMalformedDuration) ||
		errors.Is(err, domain.ErrUnparseableTimestamp) ||
		errors.Is(err, domain.ErrMissingProfile)
}

// LoadErrorKind returns a short label for err, used in logs and metrics.
func LoadErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, domain.ErrMalformedDuration):
		return "malformed_duration"
	case errors.Is(err, domain.ErrUnparseableTimestamp):
		return "unparseable_timestamp"
	case errors.Is(err, domain.ErrMissingProfile):
		return "missing_profile"
	case errors.As(err, new(*csv.ParseError)):
		return "malformed_csv"
	default:
		return "read_error"
	}
}
