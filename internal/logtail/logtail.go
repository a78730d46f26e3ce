package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Options narrow what Tail returns.
type Options struct {
	// MaxLines caps the result to the newest lines. Zero or negative keeps all.
	MaxLines int
	// MinLevel drops records below this level. Lines without a level=
	// attribute are always kept.
	MinLevel slog.Level
}

// Tail returns the newest matching lines of the log at path, oldest first.
// A missing file yields no lines and no error.
func Tail(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var ring []string
	idx := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if lvl, ok := LineLevel(line); ok && lvl < opts.MinLevel {
			continue
		}
		if opts.MaxLines <= 0 || len(ring) < opts.MaxLines {
			ring = append(ring, line)
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % opts.MaxLines
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if idx == 0 {
		return ring, nil
	}
	lines := make([]string, 0, len(ring))
	lines = append(lines, ring[idx:]...)
	lines = append(lines, ring[:idx]...)
	return lines, nil
}

// LineLevel extracts the level from a slog text-handler line.
func LineLevel(line string) (slog.Level, bool) {
	for _, field := range strings.Fields(line) {
		value, ok := strings.CutPrefix(field, "level=")
		if !ok {
			continue
		}
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(value)); err != nil {
			return 0, false
		}
		return lvl, true
	}
	return 0, false
}
