package manifest

import "strings"

// Asset file extensions the validator dispatches on.
const (
	ExtParquet = ".parquet"
	ExtSQLite  = ".sqlite"
	ExtHDT     = ".hdt"
)

// SetExtensions lists the extensions subject to declared-vs-on-disk
// set reconciliation, each compared independently. ExtParquet and
// ExtSQLite additionally get schema reconciliation; ExtHDT does not.
var SetExtensions = []string{ExtParquet, ExtSQLite, ExtHDT}

// Manifest is the typed, read-only view of a brick manifest after a
// validating decode.
type Manifest struct {
	// Brick is the brick identifier.
	Brick string
	// Description is the human description of the brick.
	Description string
	// Assets maps relative asset paths to their entries. Every declared
	// path is present, including those whose entry failed validation.
	Assets map[string]Asset

	// raw keeps the decoded entry values so ValidateEntries can report
	// shape problems with their actual types.
	raw map[string]any
}

// Asset is one declared data file of a brick.
type Asset struct {
	// Description is the human description of the asset.
	Description string
	// Schema is the declared schema text: a JSON column array for
	// columnar assets, raw DDL for relational assets.
	Schema string
	// Valid reports whether the entry passed structural validation.
	// Schema reconciliation is skipped for invalid entries; the
	// structural error already recorded stands for them.
	Valid bool
}

// DeclaredColumn is one element of a columnar asset's declared schema.
type DeclaredColumn struct {
	ColumnName string `json:"column_name"`
	Logical    string `json:"logical"`
	Physical   string `json:"physical"`
}

// ExtensionOf returns the dispatch extension of an asset path, or ""
// when the path has none of the known extensions.
func ExtensionOf(path string) string {
	for _, ext := range SetExtensions {
		if strings.HasSuffix(path, ext) {
			return ext
		}
	}
	return ""
}
