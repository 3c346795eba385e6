// Package manifest defines the typed model of a brick manifest and its
// validating decoder.
//
// A manifest (BIOBRICK.yaml by convention) names the brick, describes
// it, and maps relative asset paths to entries carrying a description
// and a declared schema. Decoding and structural validation are a
// single pass: Load either returns a fully-typed, read-only Manifest or
// records the precise structural diagnostic that stopped it. There is
// no way to obtain a Manifest that skipped validation.
//
// Top-level problems (missing file, bad YAML, wrong root type, missing
// keys) gate the whole run. Per-entry problems accumulate instead:
// ValidateEntries reports every bad entry and marks it so schema
// reconciliation skips it, while the run continues.
package manifest
