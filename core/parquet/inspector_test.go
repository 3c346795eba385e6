package parquet

import (
	"os"
	"path/filepath"
	"testing"

	parquetgo "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID    int64   `parquet:"id"`
	Name  string  `parquet:"name"`
	Score float64 `parquet:"score"`
}

func writeParquet(t *testing.T, rows []testRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := parquetgo.NewGenericWriter[testRow](f)
	_, err = w.Write(rows)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestFileInspector(t *testing.T) {
	t.Run("Columns From Real File", func(t *testing.T) {
		path := writeParquet(t, []testRow{
			{ID: 1, Name: "alpha", Score: 0.5},
			{ID: 2, Name: "beta", Score: 1.5},
		})

		columns, err := FileInspector{}.Columns(path)
		require.NoError(t, err)
		require.Len(t, columns, 3)

		types := make(map[string]string, len(columns))
		for _, col := range columns {
			types[col.Name] = col.PhysicalType
		}
		assert.Equal(t, "INT64", types["id"])
		assert.Equal(t, "STRING", types["name"])
		assert.Equal(t, "DOUBLE", types["score"])
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := FileInspector{}.Columns(filepath.Join(t.TempDir(), "nope.parquet"))
		assert.Error(t, err)
	})

	t.Run("Not A Parquet File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bogus.parquet")
		require.NoError(t, os.WriteFile(path, []byte("not parquet at all"), 0644))

		_, err := FileInspector{}.Columns(path)
		assert.Error(t, err)
	})
}
