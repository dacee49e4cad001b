package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gohanoi"
)

func TestJournalOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	j, err := New(&buf, "user", 2)
	require.NoError(t, err)

	tr, err := hanoi.NewTracker(2)
	require.NoError(t, err)
	j.Attach(tr)

	tr.Apply(hanoi.Move{From: 0, To: 1})
	tr.Apply(hanoi.Move{From: 0, To: 1}) // refused
	tr.Apply(hanoi.Move{From: 0, To: 2})
	tr.Apply(hanoi.Move{From: 1, To: 2})
	require.NoError(t, j.Close(tr.Puzzle().MoveCount()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "invalid JSON line: %s", line)
	}

	events, err := Read(&buf)
	require.NoError(t, err)

	var types []EventType
	for _, e := range events {
		types = append(types, e.Type)
		assert.Equal(t, j.RunID(), e.RunID)
	}
	assert.Equal(t, []EventType{
		EventHeader, EventMove, EventIllegal, EventMove, EventMove, EventSolved, EventEnd,
	}, types)

	_, err = uuid.Parse(j.RunID())
	assert.NoError(t, err)
	assert.Equal(t, 2, events[0].Height)
	assert.Equal(t, "user", events[0].Mode)
	assert.Equal(t, uint64(3), events[5].Moves)
}

func TestReplay(t *testing.T) {
	var buf bytes.Buffer
	j, err := New(&buf, "recursive", 3)
	require.NoError(t, err)

	p, err := hanoi.New(3)
	require.NoError(t, err)
	require.NoError(t, hanoi.Solve(p, hanoi.AlgorithmRecursive))
	for i, m := range p.Moves() {
		j.LogMove(m, uint64(i+1))
	}
	j.LogSolved(p.MoveCount())
	require.NoError(t, j.Close(p.MoveCount()))

	events, err := Read(&buf)
	require.NoError(t, err)

	replayed, err := Replay(events)
	require.NoError(t, err)
	assert.True(t, replayed.IsSolved())
	assert.Equal(t, uint64(7), replayed.MoveCount())
	assert.Equal(t, p.Moves(), replayed.Moves())
}

func TestReplayRejectsIllegal(t *testing.T) {
	var buf bytes.Buffer
	j, _ := New(&buf, "user", 3)
	j.LogMove(hanoi.Move{From: 0, To: 1, Disk: 1}, 1)
	j.LogMove(hanoi.Move{From: 0, To: 1, Disk: 2}, 2)

	events, err := Read(&buf)
	require.NoError(t, err)
	_, err = Replay(events)
	assert.True(t, errors.Is(err, hanoi.ErrIllegalMove))
}

func TestReplayWithoutHeader(t *testing.T) {
	_, err := Replay(nil)
	assert.Error(t, err)
}

func TestNilJournalIsNoop(t *testing.T) {
	var j *Journal
	j.LogMove(hanoi.Move{From: 0, To: 2}, 1)
	j.LogSolved(1)
	assert.NoError(t, j.Close(1))
	assert.Empty(t, j.RunID())
	assert.Empty(t, j.FilePath())
}

func TestCreateWritesFile(t *testing.T) {
	dir := t.TempDir()
	j, err := Create(dir, "iterative", 4)
	require.NoError(t, err)
	path := j.FilePath()
	require.NoError(t, j.Close(15))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	events, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventEnd, events[1].Type)
	assert.Equal(t, uint64(15), events[1].Moves)
}

func TestCreateSameSecondKeepsBothRuns(t *testing.T) {
	dir := t.TempDir()
	first, err := Create(dir, "user", 3)
	require.NoError(t, err)
	second, err := Create(dir, "user", 3)
	require.NoError(t, err)

	assert.NotEqual(t, first.FilePath(), second.FilePath())
	assert.Contains(t, filepath.Base(first.FilePath()), first.RunID()[:8])
	require.NoError(t, first.Close(0))
	require.NoError(t, second.Close(0))

	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

// failAfter accepts n writes and then fails every later one.
type failAfter struct {
	n   int
	buf bytes.Buffer
}

var errDiskFull = errors.New("disk full")

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errDiskFull
	}
	w.n--
	return w.buf.Write(p)
}

func TestCloseReportsEarlierWriteError(t *testing.T) {
	w := &failAfter{n: 2}
	j, err := New(w, "user", 2)
	require.NoError(t, err)

	j.LogMove(hanoi.Move{From: 0, To: 1, Disk: 1}, 1)
	j.LogMove(hanoi.Move{From: 0, To: 2, Disk: 2}, 2)
	w.n = 1
	j.LogSolved(2)

	err = j.Close(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "move")
}

func TestHeaderAnywhere(t *testing.T) {
	events := []Event{
		{Type: EventMove, From: intPtr(0), To: intPtr(2)},
		{Type: EventHeader, RunID: "abc", Mode: "user", Height: 1},
	}
	h, ok := Header(events)
	require.True(t, ok)
	assert.Equal(t, "abc", h.RunID)

	p, err := Replay(events)
	require.NoError(t, err)
	assert.True(t, p.IsSolved())

	_, ok = Header(nil)
	assert.False(t, ok)
}

func TestReadBadLine(t *testing.T) {
	_, err := Read(strings.NewReader("{\"type\":\"header\"}\nnot json\n"))
	assert.ErrorContains(t, err, "line 2")
}
