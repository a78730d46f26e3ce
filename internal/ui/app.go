package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/mlref/mlref/internal/content"
	"github.com/mlref/mlref/internal/prefs"
	"github.com/mlref/mlref/internal/tabs"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Logger     *slog.Logger
	Catalog    content.Catalog
	Family     string
	Section    string
	LockFamily bool
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	logger    *slog.Logger
	prefsPath string
	keys      keyMap

	theme Theme
	// contentStyles is shared with every section panel so a theme change
	// reaches them without rebuilding the tabs.
	contentStyles *content.Styles

	browser  *browser
	viewport viewport.Model
	help     help.Model
	alert    bubbleup.AlertModel

	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	styles := theme.ContentStyles()
	contentStyles := &styles

	b := newBrowser(opts.Catalog, browserOptions{
		Family:  opts.Family,
		Section: opts.Section,
		Locked:  opts.LockFamily,
		Logger:  logger,
		Panel: func(s content.Section) tabs.Renderer {
			return content.Panel{Section: s, Styles: contentStyles}
		},
		FamilyStyles:  theme.TabStyles(theme.Surface),
		SectionStyles: theme.TabStyles(theme.SurfaceAlt),
	})

	return Model{
		ctx:           ctx,
		logger:        logger,
		prefsPath:     prefsPath,
		keys:          DefaultKeyMap(),
		theme:         theme,
		contentStyles: contentStyles,
		browser:       b,
		help:          help.New(),
		alert:         *bubbleup.NewAlertModel(50, false, alertDuration),
	}
}

// Init implements tea.Model. It starts the alert ticker that expires
// notices.
func (m Model) Init() tea.Cmd {
	return m.alert.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	alertModel, alertCmd := m.alert.Update(msg)
	m.alert = alertModel.(bubbleup.AlertModel)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, tea.Batch(alertCmd, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), m.contentHeight())
		}
		m.ready = true
		m.syncViewport(false)
		return m, alertCmd
	}

	return m, alertCmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.alert.Render(m.renderHelp())
	}
	return m.alert.Render(m.renderMain())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.NextFamily):
		return m.moveFamily(m.browser.nextFamily)

	case key.Matches(msg, m.keys.PrevFamily):
		return m.moveFamily(m.browser.prevFamily)

	case key.Matches(msg, m.keys.NextSection):
		if m.browser.nextSection() {
			m.syncViewport(true)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevSection):
		if m.browser.prevSection() {
			m.syncViewport(true)
		}
		return m, nil

	case key.Matches(msg, m.keys.JumpSection):
		if len(msg.Runes) == 1 && m.browser.jumpSection(int(msg.Runes[0]-'1')) {
			m.syncViewport(true)
		}
		return m, nil
	}

	return m.handleScrollKey(msg)
}

func (m Model) handleScrollKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	}
	return m, nil
}

// moveFamily steps the family row. A locked row refuses the request and
// the user gets told why nothing moved.
func (m Model) moveFamily(step func() bool) (Model, tea.Cmd) {
	if step() {
		m.syncViewport(true)
		return m, nil
	}
	if m.browser.locked {
		msg := fmt.Sprintf("Family locked to %s", m.browser.familyTitle())
		return m, m.alert.NewAlertCmd(bubbleup.InfoKey, msg)
	}
	return m, nil
}

func (m Model) cycleTheme() (Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	*m.contentStyles = m.theme.ContentStyles()
	m.browser.setStyles(m.theme.TabStyles(m.theme.Surface), m.theme.TabStyles(m.theme.SurfaceAlt))
	m.syncViewport(false)
	m.logger.Info("theme changed", "theme", m.theme.Name)

	if err := m.savePrefs(); err != nil {
		m.logger.Error("save prefs failed", "error", err)
		return m, m.alert.NewAlertCmd(bubbleup.ErrorKey, "Could not save theme")
	}
	return m, m.alert.NewAlertCmd(bubbleup.InfoKey, "Theme: "+m.theme.Name)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.shutdown()
	return m, tea.Quit
}

// shutdown persists the selection and releases the tab subscriptions.
func (m Model) shutdown() {
	if err := m.savePrefs(); err != nil {
		m.logger.Error("save prefs failed", "error", err)
	}
	m.browser.close()
}

func (m Model) savePrefs() error {
	if m.prefsPath == "" {
		return nil
	}
	return prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:   m.theme.Name,
		Family:  string(m.browser.family()),
		Section: string(m.browser.section()),
	})
}

// syncViewport re-renders the active pane into the viewport. Moving to a
// different pane scrolls back to the top.
func (m *Model) syncViewport(moved bool) {
	if !m.ready {
		return
	}
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight()
	m.viewport.SetContent(m.browser.contentView(m.viewport.Width))
	if moved {
		m.viewport.GotoTop()
		m.logger.Debug("pane shown",
			"family", string(m.browser.family()),
			"section", string(m.browser.section()))
	}
}

func (m Model) contentWidth() int {
	return max(min(m.width-2*contentPadding, maxContentWidth), 1)
}

func (m Model) contentHeight() int {
	return max(m.height-chromeRows, 1)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	return finish(ctx, final, err)
}

// finish maps the program's exit. A cancelled context is a clean exit, but
// quit never ran, so the final model is shut down here.
func finish(ctx context.Context, final tea.Model, err error) error {
	if err != nil && ctx.Err() != nil {
		if fm, ok := final.(Model); ok {
			fm.shutdown()
		}
		return nil
	}
	return err
}
