package hanoi

// Option configures Puzzle behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	historyCap  uint64
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		historyCap:  0,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), every applied move is stored and accessible via Moves().
// Disable this for tall puzzles, where the optimal solution has 2^H-1 moves.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithHistoryLimit caps the number of moves kept in the history.
// Moves beyond the limit are still applied and counted, just not stored.
// Zero means unlimited.
func WithHistoryLimit(n uint64) Option {
	return func(c *config) {
		c.historyCap = n
	}
}
