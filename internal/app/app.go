package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mlref/mlref/internal/applog"
	"github.com/mlref/mlref/internal/config"
	"github.com/mlref/mlref/internal/content"
	"github.com/mlref/mlref/internal/prefs"
	"github.com/mlref/mlref/internal/ui"
)

// Options configure an mlref session. Family, Section and Lock come from
// command-line flags and win over config and prefs.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/mlref/prefs.toml
	Family     string
	Section    string
	Lock       bool
}

// Env is everything a command needs once startup is done.
type Env struct {
	Config  config.Config
	Catalog content.Catalog
	Prefs   prefs.Prefs
	Logger  *slog.Logger

	prefsPath string
	closeLog  func() error
}

// Load reads config, opens the log, loads the catalog and prefs.
func Load(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := applog.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	env := &Env{Config: cfg, Logger: logger, prefsPath: opts.PrefsPath, closeLog: closeLog}

	env.Catalog, err = content.Load(cfg.ContentFile)
	if err != nil {
		_ = env.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	env.Prefs, err = prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", "error", err)
	}

	logger.Debug("startup",
		"content_file", cfg.ContentFile,
		"families", len(env.Catalog.Families),
		"theme", env.Prefs.Theme,
	)
	return env, nil
}

// Close flushes and closes the log file.
func (e *Env) Close() error {
	if e == nil || e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// Selection is the family and section a session opens on.
type Selection struct {
	Family  string
	Section string
	Locked  bool
}

// Resolve picks the opening selection. Flags win, then the last session
// from prefs when restore is on, then config.
func (e *Env) Resolve(opts Options) (Selection, error) {
	sel := Selection{
		Family:  e.Config.Family,
		Section: e.Config.Section,
		Locked:  e.Config.LockFamily || opts.Lock,
	}
	if e.Config.Restore && e.Prefs.Family != "" {
		sel.Family, sel.Section = e.Prefs.Family, e.Prefs.Section
	}

	if strings.TrimSpace(opts.Family) != "" {
		f, err := e.Catalog.Family(opts.Family)
		if err != nil {
			return Selection{}, err
		}
		sel.Family, sel.Section = f.Key, ""
	}
	if strings.TrimSpace(opts.Section) != "" {
		f, err := e.Catalog.Family(sel.Family)
		if err != nil {
			return Selection{}, err
		}
		s, err := f.Section(opts.Section)
		if err != nil {
			return Selection{}, err
		}
		sel.Section = s.Key
	}
	return sel, nil
}

// Run boots the mlref TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Load(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	sel, err := env.Resolve(opts)
	if err != nil {
		return err
	}
	env.Logger.Info("tui starting", "family", sel.Family, "section", sel.Section, "locked", sel.Locked)

	err = ui.Run(ui.Options{
		Context:    ctx,
		Logger:     env.Logger,
		Catalog:    env.Catalog,
		Family:     sel.Family,
		Section:    sel.Section,
		LockFamily: sel.Locked,
		ThemeName:  env.Prefs.Theme,
		PrefsPath:  env.prefsPath,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		env.Logger.Error("tui exited", "error", err)
		return fmt.Errorf("run tui: %w", err)
	}
	env.Logger.Info("tui stopped")
	return nil
}
