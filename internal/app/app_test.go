package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlref/mlref/internal/content"
	"github.com/mlref/mlref/internal/prefs"
)

type fixture struct {
	dir        string
	configPath string
	prefsPath  string
}

func newFixture(t *testing.T, config string) fixture {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	f := fixture{
		dir:        dir,
		configPath: filepath.Join(dir, "config.toml"),
		prefsPath:  filepath.Join(dir, "prefs.toml"),
	}
	config += "\nlog_file = \"" + filepath.Join(dir, "mlref.log") + "\"\n"
	if err := os.WriteFile(f.configPath, []byte(config), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return f
}

func (f fixture) load(t *testing.T, opts Options) *Env {
	t.Helper()
	opts.ConfigPath = f.configPath
	opts.PrefsPath = f.prefsPath
	env, err := Load(opts)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	t.Cleanup(func() { _ = env.Close() })
	return env
}

func TestLoad_Defaults(t *testing.T) {
	f := newFixture(t, "")
	env := f.load(t, Options{})

	if len(env.Catalog.Families) == 0 {
		t.Fatal("catalog is empty")
	}
	if env.Prefs.Theme != prefs.Defaults().Theme {
		t.Fatalf("theme = %q, want default", env.Prefs.Theme)
	}
	env.Logger.Info("hello")
	if _, err := os.Stat(filepath.Join(f.dir, "mlref.log")); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestLoad_BadPrefsAreLoggedNotFatal(t *testing.T) {
	f := newFixture(t, "")
	if err := os.WriteFile(f.prefsPath, []byte("theme = [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	env := f.load(t, Options{})
	_ = env.Close()

	data, err := os.ReadFile(filepath.Join(f.dir, "mlref.log"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "prefs unreadable") {
		t.Fatalf("log missing prefs warning:\n%s", data)
	}
}

func TestLoad_BadContentFile(t *testing.T) {
	f := newFixture(t, `content_file = "missing.yaml"`)
	_, err := Load(Options{ConfigPath: f.configPath, PrefsPath: f.prefsPath})
	if err == nil || !strings.Contains(err.Error(), "load catalog") {
		t.Fatalf("Load error = %v, want load catalog", err)
	}
}

func TestLoad_BadLogLevel(t *testing.T) {
	f := newFixture(t, `log_level = "chatty"`)
	_, err := Load(Options{ConfigPath: f.configPath})
	if err == nil || !strings.Contains(err.Error(), "open log") {
		t.Fatalf("Load error = %v, want open log", err)
	}
}

func TestResolve_Precedence(t *testing.T) {
	cases := []struct {
		name        string
		config      string
		saved       prefs.Prefs
		opts        Options
		wantFamily  string
		wantSection string
		wantLocked  bool
	}{
		{
			name:        "config only",
			config:      "family = \"clustering\"\nsection = \"tests\"",
			wantFamily:  "clustering",
			wantSection: "tests",
		},
		{
			name:        "prefs beat config",
			config:      "family = \"clustering\"",
			saved:       prefs.Prefs{Theme: "Slate", Family: "regression", Section: "metrics"},
			wantFamily:  "regression",
			wantSection: "metrics",
		},
		{
			name:        "restore off ignores prefs",
			config:      "family = \"clustering\"\nsection = \"tests\"\nrestore = false",
			saved:       prefs.Prefs{Theme: "Slate", Family: "regression", Section: "metrics"},
			wantFamily:  "clustering",
			wantSection: "tests",
		},
		{
			name:        "family flag resets section",
			saved:       prefs.Prefs{Theme: "Slate", Family: "regression", Section: "metrics"},
			opts:        Options{Family: "Clustering"},
			wantFamily:  "clustering",
			wantSection: "",
		},
		{
			name:        "section flag applies to resolved family",
			opts:        Options{Section: "METRICS", Lock: true},
			wantFamily:  "regression",
			wantSection: "metrics",
			wantLocked:  true,
		},
		{
			name:       "config lock",
			config:     "lock_family = true",
			wantFamily: "regression", wantSection: "overview", wantLocked: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.config)
			if tc.saved.Theme != "" {
				if err := prefs.Save(f.prefsPath, tc.saved); err != nil {
					t.Fatalf("prefs.Save: %v", err)
				}
			}
			env := f.load(t, Options{})
			sel, err := env.Resolve(tc.opts)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if sel.Family != tc.wantFamily || sel.Section != tc.wantSection || sel.Locked != tc.wantLocked {
				t.Fatalf("Resolve = %+v, want %s/%s locked=%v", sel, tc.wantFamily, tc.wantSection, tc.wantLocked)
			}
		})
	}
}

func TestResolve_UnknownFlags(t *testing.T) {
	f := newFixture(t, "")
	env := f.load(t, Options{})

	if _, err := env.Resolve(Options{Family: "trees"}); !errors.Is(err, content.ErrUnknownFamily) {
		t.Fatalf("error = %v, want ErrUnknownFamily", err)
	}
	if _, err := env.Resolve(Options{Section: "plots"}); !errors.Is(err, content.ErrUnknownSection) {
		t.Fatalf("error = %v, want ErrUnknownSection", err)
	}
}
