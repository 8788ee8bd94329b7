// Package tracker owns the feeding log file: creating it, appending feedings
// with recovery from missing or corrupt files, and reading recent rows back.
package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel causes every Store classifies its failures into.
var (
	ErrNotExist   = errors.New("log file does not exist")
	ErrPermission = errors.New("log file access denied")
	ErrCorrupt    = errors.New("log file is not a readable table")
)

// Store reads and writes one on-disk log format.
// Append and Rows never create a missing file.
type Store interface {
	// Create writes a new file holding only the header row.
	Create(path string, header []string) error
	// Append adds one row after the last stored row.
	Append(path string, row []any) error
	// Rows returns every stored row, header first.
	Rows(path string) ([][]string, error)
}

// StoreFor picks the backend from the file extension. Unknown extensions use xlsx.
func StoreFor(path string) Store {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore()
	default:
		return NewXLSXStore()
	}
}

// probe checks that path exists and can be opened for reading, or writing when write is set
func probe(path string, write bool) error {
	flag := os.O_RDONLY
	if write {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return classifyOSError(err)
	}
	return f.Close()
}

// classifyOSError maps filesystem errors onto the sentinel causes
func classifyOSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotExist, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	default:
		return err
	}
}

// corrupt marks a format-level read failure
func corrupt(err error) error {
	return fmt.Errorf("%w: %v", ErrCorrupt, err)
}
