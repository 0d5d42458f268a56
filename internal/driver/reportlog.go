package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"rosh/internal/diagfmt"
	"rosh/internal/source"
)

// Current schema version - increment when ReportRecord format changes.
const reportLogSchemaVersion uint16 = 1

// reportLogCap bounds how many records the log keeps.
const reportLogCap = 20

// ReportRecord is one persisted fatal diagnostic.
type ReportRecord struct {
	Schema  uint16
	Code    string
	Message string
	Path    string
	Line    int
	Col     int
	Machine bool
	When    time.Time
}

// ReportLog persists the most recent fatal diagnostics under the XDG
// cache directory so `rosh recent` can show them after the process that
// produced them is gone. Thread-safe for concurrent access.
type ReportLog struct {
	mu  sync.RWMutex
	dir string
}

// OpenReportLog initializes and returns a report log at the standard
// cache location for app.
func OpenReportLog(app string) (*ReportLog, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ReportLog{dir: dir}, nil
}

// OpenReportLogAt returns a report log rooted at an explicit directory.
// Used by tests to avoid touching the real cache.
func OpenReportLogAt(dir string) (*ReportLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ReportLog{dir: dir}, nil
}

func (l *ReportLog) path() string {
	return filepath.Join(l.dir, "recent.mp")
}

// NewReportRecord builds the persisted form of a rendered failure.
func NewReportRecord(f diagfmt.Failure, loc source.Location, message string) ReportRecord {
	rec := ReportRecord{
		Schema:  reportLogSchemaVersion,
		Code:    f.Code,
		Message: message,
		Machine: f.Machine,
		When:    time.Now(),
	}
	if path, ok := loc.FileOf(); ok {
		rec.Path = path
	}
	if pos := loc.LineCol(); len(pos) == 2 {
		rec.Line, rec.Col = pos[0], pos[1]
	}
	return rec
}

// Append adds a record, dropping the oldest entries beyond the cap.
func (l *ReportLog) Append(rec ReportRecord) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readLocked()
	if err != nil {
		return err
	}
	records = append(records, rec)
	if len(records) > reportLogCap {
		records = records[len(records)-reportLogCap:]
	}

	f, err := os.CreateTemp(l.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck // best-effort cleanup, rename may have consumed it

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(records); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), l.path())
}

// Recent returns the stored records, oldest first. Records with a
// different schema version are dropped rather than misread.
func (l *ReportLog) Recent() ([]ReportRecord, error) {
	if l == nil {
		return nil, nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.readLocked()
}

func (l *ReportLog) readLocked() ([]ReportRecord, error) {
	f, err := os.Open(l.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	var records []ReportRecord
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.Schema == reportLogSchemaVersion {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}
