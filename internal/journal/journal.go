// Package journal writes a JSONL event log for each puzzle run.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gohanoi"
)

// EventType identifies the type of logged event
type EventType string

const (
	EventHeader  EventType = "header"
	EventMove    EventType = "move"
	EventIllegal EventType = "illegal_move"
	EventSolved  EventType = "solved"
	EventEnd     EventType = "end"
)

const formatVersion = "1.0"

// Event is a single line of the journal
type Event struct {
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`

	// Header fields
	Version string `json:"version,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Height  int    `json:"height,omitempty"`

	// Move fields
	From  *int   `json:"from,omitempty"`
	To    *int   `json:"to,omitempty"`
	Disk  int    `json:"disk,omitempty"`
	Moves uint64 `json:"moves,omitempty"`
	Error string `json:"error,omitempty"`
}

// Journal records the events of one run. A nil or disabled Journal
// silently drops everything, so callers never need to check.
type Journal struct {
	runID     string
	startTime time.Time
	w         io.Writer
	file      *os.File
	enabled   bool
	err       error // First failed write, reported by Close
}

// New creates a journal writing to w.
func New(w io.Writer, mode string, height int) (*Journal, error) {
	return newJournal(w, uuid.New().String(), mode, height)
}

func newJournal(w io.Writer, runID, mode string, height int) (*Journal, error) {
	j := &Journal{
		runID:     runID,
		startTime: time.Now(),
		w:         w,
		enabled:   true,
	}
	err := j.write(Event{
		Type:    EventHeader,
		Version: formatVersion,
		Mode:    mode,
		Height:  height,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

// Create opens a new journal file in dir named after the start time and
// the run id. An existing file is never overwritten.
func Create(dir, mode string, height int) (*Journal, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	runID := uuid.New().String()
	filename := fmt.Sprintf("run_%s_%s_%s.jsonl", time.Now().Format("20060102_150405"), mode, runID[:8])
	file, err := os.OpenFile(filepath.Join(dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal file: %w", err)
	}

	j, err := newJournal(file, runID, mode, height)
	if err != nil {
		file.Close()
		return nil, err
	}
	j.file = file
	return j, nil
}

// RunID returns the unique id of this run.
func (j *Journal) RunID() string {
	if j == nil {
		return ""
	}
	return j.runID
}

// LogMove records an applied move.
func (j *Journal) LogMove(m hanoi.Move, moves uint64) {
	j.write(Event{
		Type:  EventMove,
		From:  intPtr(m.From),
		To:    intPtr(m.To),
		Disk:  m.Disk,
		Moves: moves,
	})
}

// LogIllegal records a refused move.
func (j *Journal) LogIllegal(m hanoi.Move, err error) {
	j.write(Event{
		Type:  EventIllegal,
		From:  intPtr(m.From),
		To:    intPtr(m.To),
		Error: err.Error(),
	})
}

// LogSolved records that the puzzle was solved.
func (j *Journal) LogSolved(moves uint64) {
	j.write(Event{Type: EventSolved, Moves: moves})
}

// Attach wires the journal to a tracker's callbacks.
func (j *Journal) Attach(t *hanoi.Tracker) {
	if j == nil {
		return
	}
	t.OnMove(func(m hanoi.Move) { j.LogMove(m, t.Puzzle().MoveCount()) })
	t.OnIllegal(j.LogIllegal)
	t.OnSolved(j.LogSolved)
}

// Close writes the end event and closes the underlying file, if any.
func (j *Journal) Close(moves uint64) error {
	if j == nil || !j.enabled {
		return nil
	}
	err := j.write(Event{Type: EventEnd, Moves: moves})
	if j.err != nil {
		err = j.err
	}
	j.enabled = false
	if j.file != nil {
		if cerr := j.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// FilePath returns the journal file path, or "" when not writing to a file.
func (j *Journal) FilePath() string {
	if j != nil && j.file != nil {
		return j.file.Name()
	}
	return ""
}

func (j *Journal) write(e Event) error {
	if j == nil || !j.enabled {
		return nil
	}
	now := time.Now()
	e.RunID = j.runID
	e.Timestamp = now
	e.ElapsedMs = now.Sub(j.startTime).Milliseconds()

	data, err := json.Marshal(e)
	if err == nil {
		_, err = j.w.Write(append(data, '\n'))
	}
	if err != nil && j.err == nil {
		j.err = fmt.Errorf("writing %s event: %w", e.Type, err)
	}
	return err
}

func intPtr(v int) *int {
	return &v
}

// Read loads every event from a JSONL journal.
func Read(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Header returns the first header event of a journal.
func Header(events []Event) (Event, bool) {
	for _, e := range events {
		if e.Type == EventHeader {
			return e, true
		}
	}
	return Event{}, false
}

// Replay rebuilds a puzzle from a journal's move events.
func Replay(events []Event) (*hanoi.Puzzle, error) {
	header, ok := Header(events)
	if !ok {
		return nil, fmt.Errorf("journal has no header")
	}

	p, err := hanoi.New(header.Height)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.Type != EventMove || e.From == nil || e.To == nil {
			continue
		}
		if err := p.Move(*e.From, *e.To); err != nil {
			return nil, fmt.Errorf("replaying %d->%d: %w", *e.From, *e.To, err)
		}
	}
	return p, nil
}
