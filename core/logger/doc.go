// Package logger provides a structured logging facility based on Zap.
//
// Logging is for operational progress (what the validator is doing);
// the validation report itself is rendered separately to stdout. The
// two never mix: a machine scraping the report sees only report output.
//
// # Run Correlation
//
// Each invocation is tagged with a run id. The WithRunID helper
// attaches it to the logger so all log entries of one validation run
// can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Validation started")
package logger
