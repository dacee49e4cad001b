// Tower of Hanoi - CLI application for playing and solving the puzzle.
package main

import (
	"github.com/SeamusWaldron/gohanoi/internal/cli"
)

func main() {
	cli.Execute()
}
