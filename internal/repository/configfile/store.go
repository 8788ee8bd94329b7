// Package configfile persists the starter configuration as a JSON record.
package configfile

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"sourdough-tracker/internal/domain"
	"sourdough-tracker/internal/errors"
)

const resource = "config file"

// Repository defines the interface for starter config persistence
type Repository interface {
	Save(path string, cfg domain.Config) error
	Load(path string) (domain.Config, error)
}

// record is the on-disk shape. Pointer fields let Load tell missing keys from zero values.
type record struct {
	JarWeight  *int    `json:"jar_weight"`
	KeepTarget *int    `json:"keep_target"`
	Ratio      []int   `json:"ratio"`
	Path       *string `json:"path"`
}

// FileRepository implements Repository on the local filesystem
type FileRepository struct{}

// New creates a new config file repository
func New() *FileRepository {
	return &FileRepository{}
}

// Save writes cfg to path through a temp file and rename, so an existing file
// is either fully replaced or left untouched. A config that fails Validate is never written.
func (r *FileRepository) Save(path string, cfg domain.Config) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ratio := []int{cfg.Ratio[0], cfg.Ratio[1], cfg.Ratio[2]}
	data, err := json.MarshalIndent(record{
		JarWeight:  &cfg.JarWeight,
		KeepTarget: &cfg.KeepTarget,
		Ratio:      ratio,
		Path:       &cfg.Path,
	}, "", "    ")
	if err != nil {
		return errors.NewStorageError("encode", resource, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return classifyWriteError(path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return classifyWriteError(path, err)
	}
	if err = tmp.Sync(); err != nil {
		return classifyWriteError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return classifyWriteError(path, err)
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return classifyWriteError(path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return classifyWriteError(path, err)
	}
	return nil
}

// Load reads the config at path. Missing, unreadable and malformed files fail
// with distinct error types.
func (r *FileRepository) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			return domain.Config{}, errors.NewNotFoundError(resource, path).WithHint(errors.InitHint)
		case stderrors.Is(err, fs.ErrPermission):
			return domain.Config{}, errors.NewPermissionError("read", path, err)
		default:
			return domain.Config{}, errors.NewStorageError("read", path, err)
		}
	}

	return decode(path, data)
}

// decode maps the JSON record field by field, rejecting unknown, missing and mistyped fields
func decode(path string, data []byte) (domain.Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return domain.Config{}, errors.NewMalformedError(path, "not a valid config record", err).WithHint(errors.InitHint)
	}
	if _, err := dec.Token(); err != io.EOF {
		return domain.Config{}, errors.NewMalformedError(path, "unexpected data after the config record", err).WithHint(errors.InitHint)
	}

	missing := func(field string) error {
		return errors.NewMalformedError(path, fmt.Sprintf("missing field %q", field), nil).WithHint(errors.InitHint)
	}
	switch {
	case rec.JarWeight == nil:
		return domain.Config{}, missing("jar_weight")
	case rec.KeepTarget == nil:
		return domain.Config{}, missing("keep_target")
	case rec.Ratio == nil:
		return domain.Config{}, missing("ratio")
	case rec.Path == nil:
		return domain.Config{}, missing("path")
	}
	if len(rec.Ratio) != 3 {
		return domain.Config{}, errors.NewMalformedError(path,
			fmt.Sprintf("ratio must have 3 values, found %d", len(rec.Ratio)), nil).WithHint(errors.InitHint)
	}

	return domain.NewConfig(
		*rec.JarWeight,
		*rec.KeepTarget,
		domain.NewRatio(rec.Ratio[0], rec.Ratio[1], rec.Ratio[2]),
		*rec.Path,
	), nil
}

func classifyWriteError(path string, err error) error {
	if stderrors.Is(err, fs.ErrPermission) {
		return errors.NewPermissionError("write", path, err)
	}
	return errors.NewStorageError("save", path, err)
}
