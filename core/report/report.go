package report

import "sync"

// Kind classifies a diagnostic so rendering and tests can dispatch on
// structure instead of parsing message strings.
type Kind string

const (
	KindManifestMissing     Kind = "manifest-missing"
	KindManifestUnparseable Kind = "manifest-unparseable"
	KindManifestMalformed   Kind = "manifest-malformed"
	KindAssetEntryInvalid   Kind = "asset-entry-invalid"
	KindAssetMissing        Kind = "asset-missing"
	KindAssetSetMismatch    Kind = "asset-set-mismatch"
	KindSchemaDecode        Kind = "schema-decode-error"
	KindSchemaShape         Kind = "schema-shape-invalid"
	KindSchemaNameMismatch  Kind = "schema-name-mismatch"
	KindSchemaTypeWarning   Kind = "schema-type-warning"
	KindRelationalEmpty     Kind = "relational-empty"
	KindRelationalMismatch  Kind = "relational-mismatch"
	KindIOError             Kind = "io-error"
)

// Entry is a single diagnostic. Expected and Actual are optional detail
// lines; when both are set the renderer prints them under the message.
type Entry struct {
	Kind     Kind   `json:"kind,omitempty"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// Report is the ordered collector of validation results. It is the only
// mutable state shared between checks; appends are mutex-guarded so a
// per-asset fan-out would not need collector changes. Checks only ever
// append; nothing reads another check's entries to make decisions.
type Report struct {
	mu        sync.Mutex
	successes []Entry
	warnings  []Entry
	errors    []Entry
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// AddSuccess records an informational success entry.
func (r *Report) AddSuccess(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, Entry{Message: message})
}

// AddWarning records an advisory entry. Warnings never fail the run.
func (r *Report) AddWarning(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, Entry{Kind: kind, Message: message})
}

// AddError records a critical entry and marks the run as failing.
// Expected and actual may be empty; they are only rendered together.
func (r *Report) AddError(kind Kind, message, expected, actual string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, Entry{Kind: kind, Message: message, Expected: expected, Actual: actual})
}

// HasCriticalErrors reports whether any error was recorded. It can never
// revert to false within a run.
func (r *Report) HasCriticalErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors) > 0
}

// Successes returns a copy of the success entries in insertion order.
func (r *Report) Successes() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.successes...)
}

// Warnings returns a copy of the warning entries in insertion order.
func (r *Report) Warnings() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.warnings...)
}

// Errors returns a copy of the error entries in insertion order.
func (r *Report) Errors() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.errors...)
}
