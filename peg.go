package hanoi

// PegCapacity is the maximum number of disks a single peg can hold.
const PegCapacity = 64

// EmptyTop is the size reported for the top of an empty peg.
// No real disk has this size, and an empty peg accepts any disk.
const EmptyTop = 0

// Peg is a bounded stack of disk sizes.
// Index 0 of the backing array is the bottom of the stack.
type Peg struct {
	disks [PegCapacity]int
	n     int
}

// Push places a disk on top of the peg.
// It does not check size ordering; that is the caller's job.
func (p *Peg) Push(size int) error {
	if p.n >= PegCapacity {
		return ErrOverflow
	}
	p.disks[p.n] = size
	p.n++
	return nil
}

// Pop removes and returns the top disk.
func (p *Peg) Pop() (int, error) {
	if p.n == 0 {
		return EmptyTop, ErrUnderflow
	}
	p.n--
	size := p.disks[p.n]
	p.disks[p.n] = 0
	return size, nil
}

// Top returns the size of the top disk, or EmptyTop if the peg is empty.
func (p *Peg) Top() int {
	if p.n == 0 {
		return EmptyTop
	}
	return p.disks[p.n-1]
}

// Len returns the number of disks on the peg.
func (p *Peg) Len() int {
	return p.n
}

// At returns the disk at the given level (0 = bottom),
// or EmptyTop if the peg holds fewer than level+1 disks.
func (p *Peg) At(level int) int {
	if level < 0 || level >= p.n {
		return EmptyTop
	}
	return p.disks[level]
}

// Disks returns a copy of the peg contents, bottom to top.
func (p *Peg) Disks() []int {
	out := make([]int, p.n)
	copy(out, p.disks[:p.n])
	return out
}

// isOrdered reports whether sizes strictly decrease from bottom to top.
func (p *Peg) isOrdered() bool {
	for i := 1; i < p.n; i++ {
		if p.disks[i] >= p.disks[i-1] {
			return false
		}
	}
	return true
}
