// Package runlog records data-quality events of a generation run in a CSV
// log, so a run that completed with warnings stays distinguishable from a
// clean one after the fact.
package runlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Event categories.
const (
	CategorySkippedRule       = "skipped_rule"
	CategoryUnresolvedCode    = "unresolved_code"
	CategoryUnresolvedSegment = "unresolved_segment"
)

// Event is one row in the run log.
type Event struct {
	Timestamp time.Time
	Period    string
	Line      string
	Category  string
	Detail    string
}

// Header is the CSV header for the run log.
const Header = "timestamp,period,line,category,detail"

const (
	numFields    = 5
	colTimestamp = 0
	colPeriod    = 1
	colLine      = 2
	colCategory  = 3
	colDetail    = 4
)

// MarshalEvent converts an Event to a CSV row.
func MarshalEvent(e Event) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colPeriod] = e.Period
	row[colLine] = e.Line
	row[colCategory] = e.Category
	row[colDetail] = e.Detail
	return row
}

// UnmarshalEvent converts a CSV row to an Event.
func UnmarshalEvent(rec []string) (Event, error) {
	if len(rec) != numFields {
		return Event{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}
	ts, err := time.Parse(time.RFC3339, rec[colTimestamp])
	if err != nil {
		return Event{}, fmt.Errorf("parsing timestamp %q: %w", rec[colTimestamp], err)
	}
	return Event{
		Timestamp: ts,
		Period:    rec[colPeriod],
		Line:      rec[colLine],
		Category:  rec[colCategory],
		Detail:    rec[colDetail],
	}, nil
}

// Append writes events to the log at path, creating it with a header row if
// needed.
func Append(path string, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating run log dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing run log header: %w", err)
		}
	}

	cw := csv.NewWriter(f)
	for _, e := range events {
		if err := cw.Write(MarshalEvent(e)); err != nil {
			return fmt.Errorf("writing run log event: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all events in the log at path. A missing log is empty, not
// an error.
func Read(path string) ([]Event, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()
	return readEvents(f)
}

func readEvents(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var events []Event
	for i, rec := range records[1:] {
		e, err := UnmarshalEvent(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		events = append(events, e)
	}
	return events, nil
}
