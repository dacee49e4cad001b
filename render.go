package hanoi

import (
	"strconv"
	"strings"
)

// Render draws the board as text, one line per level from the top down.
// Each peg column is 2*height+1 characters wide. A disk of size d is drawn
// as its number flanked by d dashes, and an empty slot as a lone "0":
//
//	  -1-     0      0
//	 --2--    0      0
//	---3---   0      0
func Render(p *Puzzle) string {
	var sb strings.Builder
	h := p.height
	for level := h - 1; level >= 0; level-- {
		for peg := 0; peg < NumPegs; peg++ {
			writeSlot(&sb, h, p.DiskAt(peg, level))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeSlot(sb *strings.Builder, height, disk int) {
	if disk == EmptyTop {
		sb.WriteString(strings.Repeat(" ", height))
		sb.WriteByte('0')
		sb.WriteString(strings.Repeat(" ", height))
		return
	}

	// Two-digit sizes eat one dash on the left to keep the column width.
	shift := 0
	if disk > 9 {
		shift = 1
	}
	pad := strings.Repeat(" ", height-disk)
	sb.WriteString(pad)
	sb.WriteString(strings.Repeat("-", disk-shift))
	sb.WriteString(strconv.Itoa(disk))
	sb.WriteString(strings.Repeat("-", disk))
	sb.WriteString(pad)
}
