// Package parquet introspects the schema embedded in columnar asset
// files.
//
// The Inspector interface decouples the columnar reconciler from the
// file format library so checks can be tested against a mock, mirroring
// how the storage client is abstracted elsewhere in the codebase. The
// concrete FileInspector reads the footer of a parquet file and reports
// each top-level field as a (name, physical type) pair.
package parquet
