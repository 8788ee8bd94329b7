// Package migrations holds the schema of SQLite feeding logs.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var files embed.FS

// step is one numbered schema change
type step struct {
	version int
	name    string
	script  string
}

// Apply runs every step newer than the database's current version, each in its own transaction
func Apply(db *sql.DB) error {
	if err := ensureVersionTable(db); err != nil {
		return fmt.Errorf("failed to create version table: %w", err)
	}

	all, err := steps()
	if err != nil {
		return fmt.Errorf("failed to load schema steps: %w", err)
	}

	applied, err := versions(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	for _, s := range all {
		if done[s.version] {
			continue
		}
		if err := applyStep(db, s); err != nil {
			return fmt.Errorf("failed to apply %s: %w", s.name, err)
		}
	}
	return nil
}

// versions lists the applied step versions in ascending order
func versions(db *sql.DB) ([]int, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// applyStep runs a schema script and records its version atomically
func applyStep(db *sql.DB, s step) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(s.script); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", s.version); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// steps loads the NNNNNN_name.sql files sorted by version
func steps() ([]step, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, err
	}

	var out []step
	for _, name := range names {
		version, err := parseVersion(name)
		if err != nil {
			return nil, err
		}
		script, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, step{
			version: version,
			name:    strings.TrimSuffix(name, ".sql"),
			script:  string(script),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

func parseVersion(filename string) (int, error) {
	prefix, _, ok := strings.Cut(filename, "_")
	if !ok {
		return 0, fmt.Errorf("schema file %s has no version prefix", filename)
	}
	v, err := strconv.Atoi(prefix)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("schema file %s has invalid version %q", filename, prefix)
	}
	return v, nil
}
