package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"bmidash.org/internal/logging"
)

// CSVSource reads a comma separated file whose header row names a BMI column.
type CSVSource struct {
	Path   string
	Logger *slog.Logger
}

func (s *CSVSource) Describe() string {
	return "csv:" + s.Path
}

func (s *CSVSource) BMIValues(ctx context.Context) (values []float64, err error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer logging.HandleDeferredError(&err, f.Close, s.Logger, "close_dataset_csv")

	return ReadCSV(ctx, f)
}

// ReadCSV parses BMI values out of r. Blank cells are skipped; any other value
// that does not parse as a float is an error naming its line.
func ReadCSV(ctx context.Context, r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoBMIColumn
	}
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	column := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")), "bmi") {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, ErrNoBMIColumn
	}

	var values []float64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}

		if column >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[column])
		if cell == "" {
			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			line, _ := reader.FieldPos(column)
			return nil, fmt.Errorf("dataset line %d: invalid BMI %q: %w", line, cell, err)
		}
		values = append(values, v)
	}

	return values, nil
}
