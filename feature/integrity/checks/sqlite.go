package checks

import (
	"fmt"
	"strings"

	"brick-validator/core/database"
	"brick-validator/core/report"
)

// CheckSQLiteSchema reconciles a relational asset's declared DDL
// against the CREATE TABLE statements in the file's catalog. The
// comparison is whitespace-insensitive but otherwise strict: declared
// DDL is expected to be copied from the source of truth, not
// transcribed into a type taxonomy, so any structural difference is an
// error.
func CheckSQLiteSchema(assetPath, schemaStr, filePath string, rep *report.Report) {
	db, err := database.Open(filePath)
	if err != nil {
		rep.AddError(report.KindIOError,
			fmt.Sprintf("Failed to read SQLite database '%s': %v", assetPath, err),
			"Valid SQLite database file",
			fmt.Sprintf("Error: %v", err))
		return
	}
	defer database.Close(db)

	defs, err := database.TableDefinitions(db)
	if err != nil {
		rep.AddError(report.KindIOError,
			fmt.Sprintf("Failed to validate SQLite schema for '%s': %v", assetPath, err),
			"Readable SQLite file",
			fmt.Sprintf("Error: %v", err))
		return
	}

	if len(defs) == 0 {
		rep.AddError(report.KindRelationalEmpty,
			fmt.Sprintf("Asset '%s' SQLite database contains no tables", assetPath),
			"At least one table with schema",
			"No tables found")
		return
	}

	actualSchema := strings.Join(defs, ";\n") + ";"

	expectedNormalized := normalizeDDL(schemaStr)
	actualNormalized := normalizeDDL(actualSchema)

	if stripWhitespace(expectedNormalized) != stripWhitespace(actualNormalized) {
		rep.AddError(report.KindRelationalMismatch,
			fmt.Sprintf("Asset '%s' schema does not match SQLite database schema", assetPath),
			"\n"+expectedNormalized,
			"\n"+actualNormalized)
		return
	}

	rep.AddSuccess(fmt.Sprintf("Asset '%s' schema matches SQLite database", assetPath))
}

// normalizeDDL trims each line and drops empty lines. The result is
// what mismatch diagnostics show, so it stays readable; the final
// comparison additionally strips all remaining whitespace.
func normalizeDDL(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func stripWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "\n", "")
}
