package schema

import "strings"

// typeClasses groups physical/logical type spellings that are treated
// as interchangeable. The table is static configuration: declared
// schemas are hand-authored and introspected type names vary by
// file-format library, so equivalence is deliberately permissive
// (false positives over false negatives).
var typeClasses = [][]string{
	{"DOUBLE", "FLOAT64", "FLOAT", "DECIMAL"},
	{"FLOAT", "DOUBLE", "FLOAT32", "FLOAT64"},
	{"INT32", "INT64", "INT", "INTEGER", "LONG"},
	{"INT32", "INT", "INTEGER"},
	{"INT64", "LONG", "BIGINT"},
	{"STRING", "VARCHAR", "TEXT", "UTF8"},
	{"BINARY", "BYTE_ARRAY", "VARBINARY", "BYTES"},
	{"BOOL", "BOOLEAN"},
	{"TIMESTAMP", "DATETIME", "TIMESTAMP_MILLIS", "TIMESTAMP_MICROS"},
}

// Compatible reports whether a declared logical type and an introspected
// physical type belong to the same equivalence class. Matching is
// case-insensitive; class membership also accepts a spelling that merely
// contains a class member, which tolerates parameterized forms like
// DECIMAL(10,2) or TIMESTAMP(unit=MILLIS). The containment check is not
// anchored to token boundaries; tightening it would reject previously
// accepted schemas.
func Compatible(expectedLogical, actualType string) bool {
	expected := strings.ToUpper(expectedLogical)
	actual := strings.ToUpper(actualType)

	if expected == actual {
		return true
	}

	for _, class := range typeClasses {
		if inClass(expected, class) && inClass(actual, class) {
			return true
		}
	}
	return false
}

func inClass(s string, class []string) bool {
	for _, member := range class {
		if s == member || strings.Contains(s, member) {
			return true
		}
	}
	return false
}
