// Package report collects and renders validation results.
//
// A Report is the single shared object threaded through every check of a
// validation run. Checks append successes, warnings, and errors; nothing
// is ever removed, and recording any error marks the run as failing for
// the rest of its lifetime.
//
// # Diagnostic Kinds
//
// Every warning and error carries a Kind tag (manifest-malformed,
// asset-set-mismatch, schema-name-mismatch, ...) plus optional
// expected/actual detail fields. Rendering is a pure formatting step
// over this structured data; message strings are never parsed back.
//
// # Rendering
//
// Render writes the report in a fixed order — successes, warnings,
// errors, pass/fail banner — with terminal styling applied via
// fatih/color (automatically disabled on non-TTY output).
//
// # Usage
//
//	rep := report.New()
//	rep.AddSuccess("BIOBRICK.yaml file exists")
//	rep.AddError(report.KindAssetMissing, "Asset file not found: data/x.parquet",
//	    "File at /repo/brick/data/x.parquet", "File does not exist")
//	rep.Render(os.Stdout)
//	os.Exit(exitCode(rep.HasCriticalErrors()))
package report
