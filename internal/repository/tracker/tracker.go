package tracker

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"sourdough-tracker/internal/domain"
	"sourdough-tracker/internal/errors"
)

const resource = "feeding log"

// Recovery describes what AppendFeeding had to do before the row could be written
type Recovery int

const (
	// RecoveryNone means the log existed and was readable
	RecoveryNone Recovery = iota
	// RecoveryCreated means the log was missing and a new one was created
	RecoveryCreated
	// RecoveryRestored means the log was unreadable, moved aside and recreated
	RecoveryRestored
)

// String returns the string representation of Recovery
func (r Recovery) String() string {
	switch r {
	case RecoveryNone:
		return "none"
	case RecoveryCreated:
		return "created"
	case RecoveryRestored:
		return "restored"
	default:
		return "unknown"
	}
}

// AppendResult reports a successful append
type AppendResult struct {
	Date       string
	Recovery   Recovery
	BackupPath string
}

// Tracker manages the feeding log on top of a Store
type Tracker struct {
	store  Store
	logger *slog.Logger
}

// New creates a new Tracker
func New(store Store, logger *slog.Logger) *Tracker {
	return &Tracker{store: store, logger: logger}
}

// CreateLogFile writes a new log holding only the header row.
// An existing file is left byte-for-byte untouched and created is false.
func (t *Tracker) CreateLogFile(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		t.logger.Warn("feeding log already exists, leaving it untouched", "path", path)
		return false, nil
	} else if !stderrors.Is(err, os.ErrNotExist) {
		t.logger.Error("could not inspect feeding log", "path", path, "error", err)
		return false, t.classify("inspect", path, err)
	}

	if err := t.store.Create(path, domain.LogHeader); err != nil {
		t.logger.Error("could not create feeding log", "path", path, "error", err)
		return false, t.classify("create", path, err)
	}

	t.logger.Info("created feeding log", "path", path)
	return true, nil
}

// AppendFeeding writes f as the newest row of the log at path.
// A missing log is created and an unreadable one is moved to a backup first.
// Permission failures are fatal and leave every file as it was.
func (t *Tracker) AppendFeeding(f domain.Feeding, path string) (AppendResult, error) {
	result := AppendResult{Date: f.Date}

	row, err := f.ToRow()
	if err != nil {
		t.logger.Error("feeding cannot be rendered", "path", path, "error", err)
		return result, err
	}

	appendErr := t.store.Append(path, row)
	switch {
	case appendErr == nil:
	case stderrors.Is(appendErr, ErrNotExist):
		t.logger.Warn("feeding log missing, creating it", "path", path)
		if err := t.createAndAppend(path, row); err != nil {
			return result, err
		}
		result.Recovery = RecoveryCreated
	case stderrors.Is(appendErr, ErrCorrupt):
		backup, err := t.backup(path)
		if err != nil {
			return result, err
		}
		t.logger.Warn("feeding log unreadable, moved aside", "path", path, "backup", backup, "error", appendErr)
		if err := t.createAndAppend(path, row); err != nil {
			return result, err
		}
		result.Recovery = RecoveryRestored
		result.BackupPath = backup
	default:
		t.logger.Error("could not append feeding", "path", path, "error", appendErr)
		return result, t.classify("write", path, appendErr)
	}

	t.logger.Info("logged feeding", "path", path, "date", f.Date,
		"jar_weight_total", f.JarWeightTotal, "recovery", result.Recovery.String())
	return result, nil
}

// RecentFeedings returns the header and the last limit data rows in stored order.
// Rows shorter than the header are padded with empty values.
func (t *Tracker) RecentFeedings(path string, limit int) (header []string, rows [][]string, err error) {
	all, err := t.store.Rows(path)
	if err != nil {
		t.logger.Error("could not read feeding log", "path", path, "error", err)
		return nil, nil, t.classify("read", path, err)
	}

	header = domain.LogHeader
	if len(all) > 0 {
		header, all = all[0], all[1:]
	}

	if limit <= 0 {
		return header, [][]string{}, nil
	}
	if limit < len(all) {
		all = all[len(all)-limit:]
	}

	rows = make([][]string, len(all))
	for i, r := range all {
		padded := make([]string, len(header))
		copy(padded, r)
		rows[i] = padded
	}

	t.logger.Debug("read feedings", "path", path, "rows", len(rows))
	return header, rows, nil
}

func (t *Tracker) createAndAppend(path string, row []any) error {
	if err := t.store.Create(path, domain.LogHeader); err != nil {
		t.logger.Error("could not create feeding log", "path", path, "error", err)
		return t.classify("create", path, err)
	}
	if err := t.store.Append(path, row); err != nil {
		t.logger.Error("could not append feeding", "path", path, "error", err)
		return t.classify("write", path, err)
	}
	return nil
}

// backup renames path to the first free of path.bak, path.bak.1, path.bak.2, ...
func (t *Tracker) backup(path string) (string, error) {
	backup := path + ".bak"
	for n := 1; ; n++ {
		if _, err := os.Lstat(backup); stderrors.Is(err, os.ErrNotExist) {
			break
		}
		backup = fmt.Sprintf("%s.bak.%d", path, n)
	}

	if err := os.Rename(path, backup); err != nil {
		t.logger.Error("could not move unreadable feeding log aside", "path", path, "backup", backup, "error", err)
		return "", t.classify("back up", path, err)
	}
	return backup, nil
}

// classify converts store and filesystem failures into application errors
func (t *Tracker) classify(operation, path string, err error) error {
	switch {
	case stderrors.Is(err, ErrNotExist), stderrors.Is(err, os.ErrNotExist):
		return errors.NewNotFoundError(resource, path).WithHint(errors.InitHint)
	case stderrors.Is(err, ErrPermission), stderrors.Is(err, os.ErrPermission):
		return errors.NewPermissionError(operation, path, err)
	case stderrors.Is(err, ErrCorrupt):
		return errors.NewCorruptedError(path, err)
	default:
		return errors.NewStorageError(operation, resource, err)
	}
}
