package checks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brick-validator/core/parquet"
	"brick-validator/core/report"
)

// MockInspector is a mock implementation of parquet.Inspector.
type MockInspector struct {
	mock.Mock
}

func (m *MockInspector) Columns(path string) ([]parquet.Column, error) {
	args := m.Called(path)
	if cols, ok := args.Get(0).([]parquet.Column); ok {
		return cols, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCheckParquetSchema(t *testing.T) {
	const declaredID = `[{"column_name":"id","logical":"INT64","physical":"INT64"}]`

	t.Run("Exact Match", func(t *testing.T) {
		insp := new(MockInspector)
		insp.On("Columns", "brick/data/x.parquet").Return([]parquet.Column{
			{Name: "id", PhysicalType: "int64"},
		}, nil)

		rep := report.New()
		CheckParquetSchema("data/x.parquet", declaredID, "brick/data/x.parquet", insp, rep)

		assert.Empty(t, rep.Errors())
		assert.Empty(t, rep.Warnings())
		require.Len(t, rep.Successes(), 1)
		assert.Contains(t, rep.Successes()[0].Message, "schema matches parquet file (1 columns)")
	})

	t.Run("Extra Column", func(t *testing.T) {
		insp := new(MockInspector)
		insp.On("Columns", mock.Anything).Return([]parquet.Column{
			{Name: "id", PhysicalType: "INT64"},
			{Name: "name", PhysicalType: "STRING"},
		}, nil)

		rep := report.New()
		CheckParquetSchema("data/x.parquet", declaredID, "brick/data/x.parquet", insp, rep)

		require.Len(t, rep.Errors(), 1)
		e := rep.Errors()[0]
		assert.Equal(t, report.KindSchemaNameMismatch, e.Kind)
		assert.Contains(t, e.Message, "schema column mismatch")
		assert.Contains(t, e.Actual, "Extra columns: name")
	})

	t.Run("Missing Column", func(t *testing.T) {
		insp := new(MockInspector)
		insp.On("Columns", mock.Anything).Return([]parquet.Column{}, nil)

		rep := report.New()
		CheckParquetSchema("data/x.parquet", declaredID, "brick/data/x.parquet", insp, rep)

		require.Len(t, rep.Errors(), 1)
		assert.Contains(t, rep.Errors()[0].Actual, "Missing columns: id")
	})

	t.Run("Type Mismatch Is Only A Warning", func(t *testing.T) {
		declared := `[
			{"column_name":"id","logical":"BOOLEAN","physical":"BOOLEAN"},
			{"column_name":"score","logical":"DOUBLE","physical":"DOUBLE"}
		]`
		insp := new(MockInspector)
		insp.On("Columns", mock.Anything).Return([]parquet.Column{
			{Name: "id", PhysicalType: "INT64"},
			{Name: "score", PhysicalType: "FLOAT"},
		}, nil)

		rep := report.New()
		CheckParquetSchema("data/x.parquet", declared, "brick/data/x.parquet", insp, rep)

		assert.Empty(t, rep.Errors())
		require.Len(t, rep.Warnings(), 1)
		w := rep.Warnings()[0]
		assert.Equal(t, report.KindSchemaTypeWarning, w.Kind)
		assert.Contains(t, w.Message, "id: expected BOOLEAN, got INT64")
		// DOUBLE vs FLOAT is the same equivalence class, so score is absent.
		assert.NotContains(t, w.Message, "score")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		insp := new(MockInspector)

		rep := report.New()
		CheckParquetSchema("data/x.parquet", "not json", "brick/data/x.parquet", insp, rep)

		require.Len(t, rep.Errors(), 1)
		assert.Equal(t, report.KindSchemaDecode, rep.Errors()[0].Kind)
		assert.Contains(t, rep.Errors()[0].Message, "not valid JSON")
		insp.AssertNotCalled(t, "Columns", mock.Anything)
	})

	t.Run("Shape Violations", func(t *testing.T) {
		cases := map[string]string{
			"not an array":     `{"column_name":"id","logical":"INT64","physical":"INT64"}`,
			"missing field":    `[{"column_name":"id","logical":"INT64"}]`,
			"extra field":      `[{"column_name":"id","logical":"INT64","physical":"INT64","nullable":true}]`,
			"non-string field": `[{"column_name":"id","logical":7,"physical":"INT64"}]`,
		}
		for name, schemaStr := range cases {
			t.Run(name, func(t *testing.T) {
				rep := report.New()
				CheckParquetSchema("data/x.parquet", schemaStr, "brick/data/x.parquet", new(MockInspector), rep)

				require.Len(t, rep.Errors(), 1)
				assert.Equal(t, report.KindSchemaShape, rep.Errors()[0].Kind)
				assert.Contains(t, rep.Errors()[0].Message, "does not conform to parquet schema format")
			})
		}
	})

	t.Run("Introspection Failure Is Reported Not Raised", func(t *testing.T) {
		insp := new(MockInspector)
		insp.On("Columns", mock.Anything).Return(nil, errors.New("corrupt footer"))

		rep := report.New()
		CheckParquetSchema("data/x.parquet", declaredID, "brick/data/x.parquet", insp, rep)

		require.Len(t, rep.Errors(), 1)
		assert.Equal(t, report.KindIOError, rep.Errors()[0].Kind)
		assert.Contains(t, rep.Errors()[0].Message, "Failed to read parquet file")
	})
}
