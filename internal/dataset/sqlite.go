package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"bmidash.org/internal/logging"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	DefaultTable  = "bmi"
	DefaultColumn = "bmi"
)

// SQLiteSource reads BMI values from a single REAL column of a SQLite table.
type SQLiteSource struct {
	Path   string
	Table  string
	Column string
	Logger *slog.Logger
}

func (s *SQLiteSource) Describe() string {
	return fmt.Sprintf("sqlite:%s#%s.%s", s.Path, s.Table, s.Column)
}

func (s *SQLiteSource) BMIValues(ctx context.Context) (values []float64, err error) {
	// sql.Open would create a missing file, so check first.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}

	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer logging.SafeCloseWithLogging(db, s.Logger, "close_dataset_sqlite")

	// Table and column names cannot be bound as parameters.
	query := fmt.Sprintf("SELECT %q FROM %q", s.Column, s.Table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying dataset: %w", err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, s.Logger, "close_dataset_rows")

	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}
		if v.Valid {
			values = append(values, v.Float64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dataset: %w", err)
	}

	return values, nil
}
