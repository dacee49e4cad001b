package hanoi

import "testing"

func TestRenderInitial(t *testing.T) {
	p, _ := New(3)
	want := "" +
		"  -1-     0      0   \n" +
		" --2--    0      0   \n" +
		"---3---   0      0   \n"
	if got := Render(p); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderSolvedSingleDisk(t *testing.T) {
	p, _ := New(1)
	if got := p.String(); got != "-1- 0  0 \n" {
		t.Errorf("initial = %q", got)
	}
	SolveRecursive(p, 1, 0, 2, 1)
	if got := p.String(); got != " 0  0 -1-\n" {
		t.Errorf("solved = %q", got)
	}
}

func TestRenderSplitBoard(t *testing.T) {
	p, _ := New(2)
	p.Move(0, 1)
	want := "  0    0    0  \n--2-- -1-   0  \n"
	if got := Render(p); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderTwoDigitDisk(t *testing.T) {
	p, _ := New(11)
	lines := Render(p)
	// Disk 11 gives up one left dash so the column stays 23 wide.
	bottom := lines[len(lines)-1-(3*23) : len(lines)-1]
	if len(bottom) != 3*23 {
		t.Fatalf("bottom row width = %d, want %d", len(bottom), 3*23)
	}
	if bottom[:23] != "----------11-----------" {
		t.Errorf("bottom disk = %q", bottom[:23])
	}
}

func TestRenderEmpty(t *testing.T) {
	p, _ := New(0)
	if got := Render(p); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}
