package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := OpenWritable(path)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)").Error)
	require.NoError(t, db.Exec("CREATE TABLE tags (item_id INTEGER, tag TEXT)").Error)
	require.NoError(t, Close(db))

	ro, err := Open(path)
	require.NoError(t, err)
	defer Close(ro)

	defs, err := TableDefinitions(ro)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Contains(t, defs[0], "CREATE TABLE items")
	assert.Contains(t, defs[1], "CREATE TABLE tags")
}

func TestTableDefinitionsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sqlite")

	// A dropped table leaves a valid database file with an empty catalog.
	db, err := OpenWritable(path)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE gone (id INTEGER)").Error)
	require.NoError(t, db.Exec("DROP TABLE gone").Error)
	require.NoError(t, Close(db))

	ro, err := Open(path)
	require.NoError(t, err)
	defer Close(ro)

	defs, err := TableDefinitions(ro)
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestOpenReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.sqlite")

	db, err := OpenWritable(path)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE items (id INTEGER)").Error)
	require.NoError(t, Close(db))

	ro, err := Open(path)
	require.NoError(t, err)
	defer Close(ro)

	// The validator must never mutate an asset.
	assert.Error(t, ro.Exec("INSERT INTO items (id) VALUES (1)").Error)
}
