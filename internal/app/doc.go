// Package app is mlref's composition root.
//
// Load turns command-line options into an Env: it reads the config, opens
// the slog file logger, loads the content catalog (embedded or from
// content_file) and the saved prefs. Unreadable prefs are logged and
// replaced with defaults; everything else is a startup error.
//
// Resolve decides where a session opens:
//
//  1. --family / --section flags
//  2. the family and section saved on the last quit, when restore = true
//  3. family / section from the config file
//
// Run wires the result into the terminal UI and blocks until it exits.
package app
