// Package postgres implements the domain repositories over sqlx. Multi-row
// writes (fixture regeneration, squad replacement, live updates) run inside
// one transaction each.
package postgres

import "database/sql"

// isNotFound translates the driver's no-rows result into the repositories'
// (entity, found, error) miss contract.
func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}
