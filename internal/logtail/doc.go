// Package logtail reads the newest lines of mlref's own log file.
//
// The TUI owns the terminal, so mlref logs to a file instead of stderr. The
// "mlref log" command uses Tail to print the end of that file, optionally
// dropping records below a slog level:
//
//	lines, err := logtail.Tail(cfg.LogFile, logtail.Options{
//		MaxLines: 50,
//		MinLevel: slog.LevelWarn,
//	})
//
// Tail makes a single pass over the file and keeps at most MaxLines in a
// ring buffer, so memory stays bounded however large the log grows.
package logtail
