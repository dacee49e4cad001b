// Package tui implements the full-screen interactive Tower of Hanoi game.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gohanoi"
)

// Colors holds lipgloss color values (ANSI numbers or hex strings).
type Colors struct {
	Disk   string
	Peg    string
	Cursor string
}

// Options configures the game.
type Options struct {
	Colors    Colors
	StepDelay time.Duration // Delay between auto-solve moves
}

// Messages
type stepMsg struct{}

// Model is the bubbletea model for the game.
type Model struct {
	tracker *hanoi.Tracker
	styles  styles
	opts    Options

	selected int // Source peg picked by the player, -1 when none

	// Auto-solve
	plan    []hanoi.Move
	planPos int

	status   string
	err      error
	quitting bool
}

// NewModel creates a game model around a tracker.
func NewModel(t *hanoi.Tracker, opts Options) *Model {
	return &Model{
		tracker:  t,
		styles:   newStyles(opts.Colors),
		opts:     opts,
		selected: -1,
		status:   "Pick a source peg",
	}
}

// Run starts the game and blocks until the player quits or solves it.
func Run(t *hanoi.Tracker, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(t, opts), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) stepCmd() tea.Cmd {
	return tea.Tick(m.opts.StepDelay, func(time.Time) tea.Msg {
		return stepMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "1", "2", "3":
			if m.solving() {
				return m, nil
			}
			m.pick(int(msg.String()[0] - '1'))

		case "u":
			if m.solving() {
				return m, nil
			}
			m.selected = -1
			if m.tracker.Undo() {
				m.status = "Undid last move"
			} else {
				m.status = "Nothing to undo"
			}
			m.err = nil

		case "r":
			m.tracker.Reset()
			m.plan = nil
			m.selected = -1
			m.err = nil
			m.status = "Reset"

		case "s":
			if m.solving() {
				return m, nil
			}
			if m.tracker.Puzzle().MoveCount() != 0 {
				m.status = "Auto-solve starts from the initial stack; press r to reset"
				return m, nil
			}
			m.plan = hanoi.OptimalMoves(m.tracker.Puzzle().Height())
			m.planPos = 0
			m.selected = -1
			m.status = "Solving..."
			return m, m.stepCmd()
		}

	case stepMsg:
		if !m.solving() {
			return m, nil
		}
		mv := m.plan[m.planPos]
		m.planPos++
		if err := m.tracker.Apply(mv); err != nil {
			m.err = err
			m.plan = nil
			return m, nil
		}
		if m.solving() {
			return m, m.stepCmd()
		}
		m.plan = nil
	}

	if m.tracker.IsSolved() && !m.solving() {
		m.status = fmt.Sprintf("Solved in %d moves", m.tracker.Puzzle().MoveCount())
	}
	return m, nil
}

func (m *Model) solving() bool {
	return m.plan != nil && m.planPos < len(m.plan)
}

// pick handles a peg key: first press selects the source, second the target.
func (m *Model) pick(peg int) {
	if m.selected < 0 {
		if len(m.tracker.Puzzle().Peg(peg)) == 0 {
			m.err = hanoi.ErrEmptyPeg
			return
		}
		m.selected = peg
		m.err = nil
		m.status = fmt.Sprintf("Move from peg %d to...", peg+1)
		return
	}

	from := m.selected
	m.selected = -1
	if from == peg {
		m.err = nil
		m.status = "Selection cleared"
		return
	}
	if err := m.tracker.Apply(hanoi.Move{From: from, To: peg}); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("Moved %d -> %d", from+1, peg+1)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	pz := m.tracker.Puzzle()

	b.WriteString(m.styles.title.Render("Tower of Hanoi"))
	b.WriteString("\n\n")
	b.WriteString(m.board())
	b.WriteString("\n")

	pr := m.tracker.Progress()
	b.WriteString(m.styles.status.Render(fmt.Sprintf("Moves: %d   Optimal: %d   Disks: %d",
		pz.MoveCount(), pr.Optimal, pz.Height())))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.err.Render(m.err.Error()))
	case pz.IsSolved():
		b.WriteString(m.styles.solved.Render(m.status))
	default:
		b.WriteString(m.status)
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.help.Render("1-3: pick peg  u: undo  s: auto-solve  r: reset  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// board draws the three pegs side by side with styled disks.
func (m *Model) board() string {
	pz := m.tracker.Puzzle()
	h := pz.Height()
	width := 2*h + 3

	cols := make([]string, hanoi.NumPegs)
	for peg := 0; peg < hanoi.NumPegs; peg++ {
		var lines []string
		for level := h - 1; level >= 0; level-- {
			disk := pz.DiskAt(peg, level)
			if disk == hanoi.EmptyTop {
				lines = append(lines, m.styles.peg.Render(center("|", width)))
				continue
			}
			lines = append(lines, m.styles.disk.Render(center(strings.Repeat("=", 2*disk+1), width)))
		}

		label := fmt.Sprintf("[%d]", peg+1)
		if peg == m.selected {
			lines = append(lines, m.styles.selected.Render(center(label, width)))
		} else {
			lines = append(lines, m.styles.peg.Render(center(label, width)))
		}
		cols[peg] = strings.Join(lines, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
