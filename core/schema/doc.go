// Package schema implements the type-compatibility oracle used when
// reconciling declared columnar schemas against introspected files.
//
// Compatibility is equivalence, not identity: INT32 vs INTEGER or
// DOUBLE vs FLOAT64 are benign representational differences between a
// hand-written manifest and whatever names the file-format library
// reports. The oracle answers a single question — are these two type
// spellings interchangeable — using a fixed equivalence-class table.
//
// An incompatible verdict is advisory; callers surface it as a warning,
// never an error.
package schema
