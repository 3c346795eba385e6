package database

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// tableDef matches one row of the sqlite_master catalog query.
type tableDef struct {
	SQL sql.NullString `gorm:"column:sql"`
}

// TableDefinitions returns the CREATE TABLE statements recorded in the
// file's catalog, in catalog order. Rows with a NULL or empty sql text
// (internal tables) are skipped. An empty result is not an error here;
// the reconciler decides what zero tables means.
func TableDefinitions(db *gorm.DB) ([]string, error) {
	var rows []tableDef
	if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table'").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query table definitions: %w", err)
	}

	var defs []string
	for _, row := range rows {
		if row.SQL.Valid && row.SQL.String != "" {
			defs = append(defs, row.SQL.String)
		}
	}
	return defs, nil
}
