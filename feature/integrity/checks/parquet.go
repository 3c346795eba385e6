package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"brick-validator/core/manifest"
	"brick-validator/core/parquet"
	"brick-validator/core/report"
	"brick-validator/core/schema"
)

// declaredColumnKeys are the exact fields a declared column object must
// carry, each as a string.
var declaredColumnKeys = []string{"column_name", "logical", "physical"}

// CheckParquetSchema reconciles a columnar asset's declared schema
// against the columns introspected from the file. Column names are
// compared as sets; type checking only proceeds when the name sets
// match exactly. Type incompatibilities are a single combined warning,
// never an error.
func CheckParquetSchema(assetPath, schemaStr, filePath string, insp parquet.Inspector, rep *report.Report) {
	declared, ok := decodeDeclaredColumns(assetPath, schemaStr, rep)
	if !ok {
		return
	}

	actual, err := insp.Columns(filePath)
	if err != nil {
		rep.AddError(report.KindIOError,
			fmt.Sprintf("Failed to read parquet file '%s': %v", assetPath, err),
			"Readable parquet file",
			fmt.Sprintf("Error: %v", err))
		return
	}

	expectedTypes := make(map[string]string, len(declared))
	for _, col := range declared {
		expectedTypes[col.ColumnName] = col.Logical
	}
	actualTypes := make(map[string]string, len(actual))
	for _, col := range actual {
		actualTypes[col.Name] = col.PhysicalType
	}

	expectedNames := sortedKeys(expectedTypes)
	actualNames := sortedKeys(actualTypes)

	if !equalSets(expectedTypes, actualTypes) {
		missing := missingKeys(expectedTypes, actualTypes)
		extra := missingKeys(actualTypes, expectedTypes)

		var parts []string
		if len(missing) > 0 {
			parts = append(parts, fmt.Sprintf("Missing columns: %s", strings.Join(missing, ", ")))
		}
		if len(extra) > 0 {
			parts = append(parts, fmt.Sprintf("Extra columns: %s", strings.Join(extra, ", ")))
		}

		rep.AddError(report.KindSchemaNameMismatch,
			fmt.Sprintf("Asset '%s' schema column mismatch", assetPath),
			fmt.Sprintf("Columns: %s", strings.Join(expectedNames, ", ")),
			fmt.Sprintf("Columns: %s | %s", strings.Join(actualNames, ", "), strings.Join(parts, " | ")))
		return
	}

	var mismatches []string
	for _, name := range expectedNames {
		if !schema.Compatible(expectedTypes[name], actualTypes[name]) {
			mismatches = append(mismatches, fmt.Sprintf("%s: expected %s, got %s", name, expectedTypes[name], actualTypes[name]))
		}
	}

	if len(mismatches) > 0 {
		rep.AddWarning(report.KindSchemaTypeWarning,
			fmt.Sprintf("Asset '%s' has potential type mismatches:\n%s", assetPath, strings.Join(mismatches, "\n")))
		return
	}

	rep.AddSuccess(fmt.Sprintf("Asset '%s' schema matches parquet file (%d columns)", assetPath, len(declared)))
}

// decodeDeclaredColumns parses and shape-checks the declared schema
// text: a JSON array whose elements carry exactly the three required
// string fields, nothing else.
func decodeDeclaredColumns(assetPath, schemaStr string, rep *report.Report) ([]manifest.DeclaredColumn, bool) {
	var raw any
	if err := json.Unmarshal([]byte(schemaStr), &raw); err != nil {
		rep.AddError(report.KindSchemaDecode,
			fmt.Sprintf("Asset '%s' schema is not valid JSON: %v", assetPath, err),
			"Valid JSON array",
			"JSON parse error")
		return nil, false
	}

	shapeError := func(detail string) {
		rep.AddError(report.KindSchemaShape,
			fmt.Sprintf("Asset '%s' schema does not conform to parquet schema format", assetPath),
			"Array of objects with column_name, logical, and physical",
			detail)
	}

	elements, ok := raw.([]any)
	if !ok {
		shapeError(fmt.Sprintf("Top-level value is %T, not an array", raw))
		return nil, false
	}

	columns := make([]manifest.DeclaredColumn, 0, len(elements))
	for i, raw := range elements {
		element, ok := raw.(map[string]any)
		if !ok {
			shapeError(fmt.Sprintf("Element %d is %T, not an object", i, raw))
			return nil, false
		}
		if problem := columnShapeProblem(element); problem != "" {
			shapeError(fmt.Sprintf("Element %d: %s", i, problem))
			return nil, false
		}
		columns = append(columns, manifest.DeclaredColumn{
			ColumnName: element["column_name"].(string),
			Logical:    element["logical"].(string),
			Physical:   element["physical"].(string),
		})
	}
	return columns, true
}

// columnShapeProblem describes the first shape violation of a declared
// column object, or "" when the object is well-formed.
func columnShapeProblem(element map[string]any) string {
	for _, key := range declaredColumnKeys {
		value, ok := element[key]
		if !ok {
			return fmt.Sprintf("missing required field '%s'", key)
		}
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("field '%s' must be a string", key)
		}
	}
	if len(element) > len(declaredColumnKeys) {
		for key := range element {
			known := false
			for _, k := range declaredColumnKeys {
				if key == k {
					known = true
					break
				}
			}
			if !known {
				return fmt.Sprintf("unexpected field '%s'", key)
			}
		}
	}
	return ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func equalSets(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}

// missingKeys returns the keys of a absent from b, sorted.
func missingKeys(a, b map[string]string) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
