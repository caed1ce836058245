package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// DriverName is the database/sql driver name of modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens a SQLite database using the modernc.org/sqlite driver. The
// distance functions are registered first, so every connection of the
// returned pool can call them.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterDistanceFunctions(); err != nil {
		return nil, err
	}
	return sql.Open(DriverName, dsn)
}
