package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the SQLite database at path, bootstraps the
// base tables, and applies the in-place column migration. Safe to call on
// every startup.
func Open(path string) (*sql.DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// modernc.org/sqlite serializes access per connection; a single
	// connection avoids SQLITE_BUSY on concurrent writes.
	d.SetMaxOpenConns(1)

	if err := ensureTables(d); err != nil {
		d.Close()
		return nil, err
	}
	if err := EnsureColumns(d); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func ensureTables(d *sql.DB) error {
	_, err := d.Exec(`
		CREATE TABLE IF NOT EXISTS submissions (
			id INTEGER PRIMARY KEY,
			fullName TEXT,
			phone TEXT,
			email TEXT,
			description TEXT,
			birthCertificate TEXT,
			resultSlip TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create submissions table: %w", err)
	}
	_, err = d.Exec(`CREATE TABLE IF NOT EXISTS blocked_users (email TEXT UNIQUE)`)
	if err != nil {
		return fmt.Errorf("create blocked_users table: %w", err)
	}
	return nil
}

// optionalColumns are the KUCCPS fields added after the first deployment.
// Existing rows keep NULL for them.
var optionalColumns = []struct {
	Name string
	Type string
}{
	{"indexNumber", "TEXT"},
	{"kcseYear", "INTEGER"},
	{"birthCertNumber", "TEXT"},
	{"primaryIndexNumber", "TEXT"},
}

// EnsureColumns adds any optional column missing from the live submissions
// table. Runs on every startup, so it must be idempotent.
func EnsureColumns(d *sql.DB) error {
	existing, err := tableColumns(d, "submissions")
	if err != nil {
		return err
	}
	for _, col := range optionalColumns {
		if existing[col.Name] {
			continue
		}
		if _, err := d.Exec(fmt.Sprintf("ALTER TABLE submissions ADD COLUMN %s %s", col.Name, col.Type)); err != nil {
			return fmt.Errorf("add column %s: %w", col.Name, err)
		}
		log.Printf("schema: added column %s to submissions", col.Name)
	}
	return nil
}

func tableColumns(d *sql.DB, table string) (map[string]bool, error) {
	rows, err := d.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("inspect %s schema: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
