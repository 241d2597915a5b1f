// Package ledger keeps the append-only CSV record of application attempts,
// used to skip jobs that were already applied to recently.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Entry is one application attempt.
type Entry struct {
	Timestamp  time.Time
	JobID      string
	Job        string
	Company    string
	Attempted  bool
	Result     bool
	ResumePath string
}

// Ledger appends entries to a CSV file. Writes are whole-row appends, never
// rewrites.
type Ledger struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Ledger {
	return &Ledger{path: path}
}

// Append records an attempt. A zero Timestamp is filled with the current time.
func (l *Ledger) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	resumeInfo := e.ResumePath
	if resumeInfo == "" {
		resumeInfo = "Original Resume"
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ledger %s: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		e.Timestamp.Format(timeLayout),
		e.JobID,
		e.Job,
		e.Company,
		strconv.FormatBool(e.Attempted),
		strconv.FormatBool(e.Result),
		resumeInfo,
	}); err != nil {
		return fmt.Errorf("failed to write ledger row: %w", err)
	}
	w.Flush()
	return w.Error()
}

// AppliedIDs returns the job IDs recorded within the given window. A missing
// ledger file means no prior applications. Rows that do not parse are skipped
// rather than failing the scan.
func (l *Ledger) AppliedIDs(window time.Duration) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open ledger %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	cutoff := time.Now().Add(-window)
	var ids []string
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if len(record) < 2 {
			continue
		}
		ts, err := time.Parse(timeLayout, record[0])
		if err != nil {
			continue
		}
		if ts.After(cutoff) {
			ids = append(ids, record[1])
		}
	}
	return ids, nil
}

// Applied reports whether jobID appears in the ledger within the window.
func (l *Ledger) Applied(jobID string, window time.Duration) (bool, error) {
	ids, err := l.AppliedIDs(window)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}
