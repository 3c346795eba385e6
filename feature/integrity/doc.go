// Package integrity validates a brick repository end to end.
//
// A run is a two-phase pipeline. Phase 1 is the structural gate:
// manifest existence, YAML parse, top-level shape, and the brick
// directory, each of which aborts the run on failure. Phase 2
// accumulates every remaining problem without aborting: asset entry
// shape, asset file existence, declared-vs-on-disk set reconciliation
// per extension, and schema reconciliation per asset (columnar assets
// against introspected columns, relational assets against catalog DDL).
//
// All results flow into a single report.Report, rendered once by the
// caller. The Service itself never returns an error for validation
// problems; a failed run is a report with critical errors.
package integrity
