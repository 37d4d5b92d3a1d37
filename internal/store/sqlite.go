package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/mkossman/keggdef/internal/kegg"
)

const schema = `
CREATE TABLE IF NOT EXISTS modules (
	entry      TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	definition TEXT NOT NULL,
	canonical  TEXT NOT NULL,
	orthologs  INTEGER NOT NULL
);`

// DB is a SQLite-backed module reference table.
type DB struct {
	db *sql.DB
}

// OpenDB opens (creating if needed) the module database at path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating modules table")
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// UpsertRows writes rows in one transaction, replacing existing entries.
func (d *DB) UpsertRows(rows []kegg.Row) error {
	tx, err := d.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO modules (entry, name, definition, canonical, orthologs)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(entry) DO UPDATE SET
			name = excluded.name,
			definition = excluded.definition,
			canonical = excluded.canonical,
			orthologs = excluded.orthologs`)
	if err != nil {
		return errors.Wrap(err, "preparing upsert")
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Entry, r.Name, r.Definition, r.Canonical, r.Orthologs); err != nil {
			return errors.Wrapf(err, "upserting %s", r.Entry)
		}
	}
	return errors.Wrap(tx.Commit(), "committing upserts")
}

// Module returns the stored row for an entry accession.
func (d *DB) Module(entry string) (*kegg.Row, error) {
	row := d.db.QueryRow(`SELECT entry, name, definition, canonical, orthologs FROM modules WHERE entry = ?`, entry)

	var r kegg.Row
	if err := row.Scan(&r.Entry, &r.Name, &r.Definition, &r.Canonical, &r.Orthologs); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.Errorf("module %s not found", entry)
		}
		return nil, errors.Wrapf(err, "querying %s", entry)
	}
	return &r, nil
}

// Count returns the number of stored modules.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM modules`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting modules")
	}
	return n, nil
}
