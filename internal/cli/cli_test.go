package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gohanoi/internal/config"
	"github.com/SeamusWaldron/gohanoi/internal/journal"
)

// runCLI runs the CLI with an isolated config path.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"--config", cfgPath}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"one argument", []string{"iterative"}},
		{"three arguments", []string{"iterative", "3", "extra"}},
		{"unknown mode", []string{"bogo", "3"}},
		{"bad height", []string{"iterative", "three"}},
		{"negative height", []string{"--", "iterative", "-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, "", tt.args...)
			assert.Equal(t, 1, code)
			assert.Equal(t, usageLine+"\n", stdout)
		})
	}
}

func TestSolverModes(t *testing.T) {
	initial := "" +
		"  -1-     0      0   \n" +
		" --2--    0      0   \n" +
		"---3---   0      0   \n"
	final := "" +
		"   0      0     -1-  \n" +
		"   0      0    --2-- \n" +
		"   0      0   ---3---\n"

	for _, mode := range []string{"iterative", "recursive", "stack"} {
		t.Run(mode, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", mode, "3")
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, initial+"\n"+final+"moves: 7\n", stdout)
		})
	}
}

func TestHeightTooLarge(t *testing.T) {
	code, _, stderr := runCLI(t, "", "iterative", "64")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "height out of range")
}

func TestUserMode(t *testing.T) {
	input := strings.Join([]string{
		"move disk from tower: 0, to tower: 1",
		"move disk from tower: 0, to tower: 1", // refused
		"nonsense",
		"0 2",
		"1->2",
	}, "\n") + "\n"

	code, stdout, stderr := runCLI(t, input, "user", "2")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasSuffix(stdout, "moves: 3\n"), stdout)
	assert.Contains(t, stderr, "refused 0->1")
	assert.Contains(t, stderr, "invalid move notation")
}

func TestUserModeInputClosed(t *testing.T) {
	code, _, stderr := runCLI(t, "0 1\n", "user", "3")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, errInputClosed.Error())
}

func TestUserModeZeroHeight(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "user", "0")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\nmoves: 0\n", stdout)
}

func TestMovesCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "moves", "2", "--algorithm", "recursive")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "1\t0->1\t1\n2\t0->2\t2\n3\t1->2\t1\n", stdout)

	code, _, stderr = runCLI(t, "", "moves", "2", "--algorithm", "bogo")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown algorithm")

	code, _, _ = runCLI(t, "", "moves", "30")
	assert.Equal(t, 1, code)
}

func TestMovesUsesConfigHeight(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Height = 1
	require.NoError(t, config.Save(cfgPath, cfg))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--config", cfgPath, "moves"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "1\t0->2\t1\n", stdout.String())
}

func TestTraceCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "trace", "3", "--width", "40", "--rows", "6")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "disks per peg, 7 moves")

	series, err := pegSeries(3)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Len(t, series[0], 8)
	assert.Equal(t, 3.0, series[0][0])
	assert.Equal(t, 3.0, series[2][7])
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	var stdout, stderr bytes.Buffer

	code := Run([]string{"config", "init", path}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	_, err := os.Stat(path)
	require.NoError(t, err)

	code = Run([]string{"config", "init", path}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code, "second init without --force should fail")

	stdout.Reset()
	code = Run([]string{"--config", path, "config", "show"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "algorithm: iterative")
}

func TestJournalFlag(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := runCLI(t, "", "--journal", dir, "recursive", "3")
	require.Equal(t, 0, code, stderr)

	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	f, err := os.Open(files[0])
	require.NoError(t, err)
	defer f.Close()

	events, err := journal.Read(f)
	require.NoError(t, err)
	replayed, err := journal.Replay(events)
	require.NoError(t, err)
	assert.True(t, replayed.IsSolved())
	assert.Equal(t, uint64(7), replayed.MoveCount())
}

func TestJournalRefusesOverlongSolverRun(t *testing.T) {
	dir := t.TempDir()
	code, stdout, stderr := runCLI(t, "", "--journal", dir, "iterative", "21")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "too long to journal")

	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLogFileFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "hanoi.log")
	code, _, stderr := runCLI(t, "", "--log-file", logPath, "iterative", "2")
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "finished in 3 moves")
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	input := "0 2\n2 0\n0 1\n0 2\n1 2\n"
	code, _, stderr := runCLI(t, input, "--journal", dir, "user", "2")
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr := runCLI(t, "", "--journal", dir, "replay")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "run_")

	files, _ := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	require.Len(t, files, 1)
	code, stdout, stderr = runCLI(t, "", "--journal", dir, "replay", filepath.Base(files[0]))
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Mode:   user")
	assert.Contains(t, stdout, "Moves:      5 (optimal 3)")
	assert.Contains(t, stdout, "Solved:     true")
	assert.Contains(t, stdout, "reversal at 1: 0->2 2->0")
}
