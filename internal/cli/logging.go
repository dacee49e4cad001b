package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// setupLogging routes the standard logger to path, or discards it when
// path is empty. The returned closer is nil when nothing was opened.
func setupLogging(path string, verbose bool) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	flags := log.LstdFlags
	if verbose {
		flags |= log.Lmicroseconds | log.Lshortfile
	}
	log.SetFlags(flags)
	log.SetOutput(f)
	return f, nil
}
