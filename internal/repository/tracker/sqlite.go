package tracker

import (
	"database/sql"
	"fmt"
	"strings"

	"sourdough-tracker/internal/repository/tracker/migrations"

	_ "modernc.org/sqlite"
)

// TableName is the table holding one row per feeding
const TableName = "feedings"

// SQLiteStore keeps the log as a SQLite database whose column names form the header
type SQLiteStore struct{}

// NewSQLiteStore creates a new database-backed store
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Create initialises a new database file with the feedings schema
func (s *SQLiteStore) Create(path string, header []string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Apply(db); err != nil {
		return classifyOSError(err)
	}

	columns, err := s.columns(db)
	if err != nil {
		return err
	}
	if strings.Join(columns, "\x00") != strings.Join(header, "\x00") {
		return fmt.Errorf("schema columns %v do not match header %v", columns, header)
	}
	return nil
}

// Append inserts row as the newest feeding
func (s *SQLiteStore) Append(path string, row []any) error {
	if err := probe(path, true); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	columns, err := s.columns(db)
	if err != nil {
		return corrupt(err)
	}
	if len(columns) != len(row) {
		return corrupt(fmt.Errorf("table has %d columns, row has %d values", len(columns), len(row)))
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", TableName, strings.Join(quoted, ", "), placeholders)

	if _, err := db.Exec(query, row...); err != nil {
		return err
	}
	return nil
}

// Rows returns the column names followed by every feeding in insertion order
func (s *SQLiteStore) Rows(path string) ([][]string, error) {
	if err := probe(path, false); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s ORDER BY rowid ASC", TableName))
	if err != nil {
		return nil, corrupt(err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, corrupt(err)
	}
	result := [][]string{header}

	for rows.Next() {
		values := make([]sql.NullString, len(header))
		dest := make([]interface{}, len(header))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, corrupt(err)
		}

		record := make([]string, len(header))
		for i, v := range values {
			record[i] = v.String
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, corrupt(err)
	}
	return result, nil
}

// columns lists the feedings table columns in declaration order
func (s *SQLiteStore) columns(db *sql.DB) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s LIMIT 0", TableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return rows.Columns()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
