// Package config loads mlref's startup settings.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults
//  2. ~/.config/mlref/config.toml, or the file given with --config
//  3. MLREF_* environment variables (MLREF_FAMILY, MLREF_LOG_LEVEL, ...)
//
// A missing config file is not an error. A file that exists but does not
// parse is.
//
// Example config.toml:
//
//	family = "clustering"
//	section = "metrics"
//	lock_family = false
//	restore = true
//	content_file = "~/notes/catalog.yaml"
//	log_file = "~/.local/state/mlref/mlref.log"
//	log_level = "debug"
//	width = 100
//
// Paths starting with ~ are expanded against the home directory.
package config
