// Package database provides read-only access to relational asset files.
//
// Relational assets are embedded SQLite databases; their schema is the
// set of CREATE TABLE statements in the sqlite_master catalog. Open
// returns a GORM handle with a mode=ro DSN so that no code path can
// mutate an asset, and TableDefinitions extracts the catalog text that
// the relational reconciler compares against the declared DDL.
//
// # Usage
//
//	db, err := database.Open(path)
//	if err != nil { ... }
//	defer database.Close(db)
//	defs, err := database.TableDefinitions(db)
package database
