package database

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT    NOT NULL UNIQUE,
	year        INTEGER NOT NULL,
	description TEXT    NOT NULL,
	rating      REAL    NOT NULL,
	ranking     INTEGER NOT NULL,
	review      TEXT    NOT NULL,
	img_url     TEXT    NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
