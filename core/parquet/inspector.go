package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Column is one introspected column of a columnar file.
type Column struct {
	// Name is the column name as stored in the file schema.
	Name string
	// PhysicalType is the type name reported by the parquet library,
	// e.g. INT64, DOUBLE, STRING.
	PhysicalType string
}

// Inspector introspects the schema of a columnar file.
type Inspector interface {
	// Columns returns the columns of the file at path.
	Columns(path string) ([]Column, error)
}

// FileInspector reads schemas from parquet files on disk.
type FileInspector struct{}

// Columns opens the parquet file at path and returns its top-level
// columns. Nested group fields have no single physical type and are
// reported as GROUP.
func (FileInspector) Columns(path string) ([]Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}

	fields := pf.Schema().Fields()
	columns := make([]Column, 0, len(fields))
	for _, field := range fields {
		physical := "GROUP"
		if field.Leaf() {
			physical = field.Type().String()
		}
		columns = append(columns, Column{Name: field.Name(), PhysicalType: physical})
	}
	return columns, nil
}
