package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrNoBMIColumn       = errors.New("dataset has no BMI column")
)

// Source yields the BMI column of a reference dataset. Implementations read
// the underlying file on every call; nothing is cached.
type Source interface {
	BMIValues(ctx context.Context) ([]float64, error)
	Describe() string
}

// Open picks a Source for path based on its extension. The file itself is not
// touched until BMIValues is called.
func Open(path string, logger *slog.Logger) (Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &CSVSource{Path: path, Logger: logger}, nil
	case ".db", ".sqlite", ".sqlite3":
		return &SQLiteSource{Path: path, Table: DefaultTable, Column: DefaultColumn, Logger: logger}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
