// Package tui is the interactive full-screen budget editor.
package tui

import (
	"context"
	"errors"

	"github.com/Veraticus/monthly-budget/internal/auth"
	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/tui/components"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current screen of the TUI.
type State int

const (
	StateLogin State = iota
	StateBudget
	StateHelp
)

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	session    Session
	store      *budget.Store
	cancelAuth context.CancelFunc
	config     Config
	theme      themes.Theme
	t          i18n.Translations
	lang       i18n.Language
	status     string
	help       help.Model
	keymap     KeyMap
	login      components.LoginModel
	editor     components.EditorModel
	summary    components.SummaryModel
	width      int
	height     int
	state      State
	prevState  State
	statusErr  bool
	quitting   bool
}

// ErrMissingDependency is returned when the TUI is built without a store or
// a session.
var ErrMissingDependency = errors.New("tui requires a store and a session")

// New creates the root model.
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Store == nil || cfg.Session == nil {
		return Model{}, ErrMissingDependency
	}
	return newModel(ctx, cfg), nil
}

func newModel(ctx context.Context, cfg Config) Model {
	keys := DefaultKeyMap()
	t := i18n.For(cfg.Language)

	m := Model{
		ctx:     ctx,
		config:  cfg,
		session: cfg.Session,
		store:   cfg.Store,
		theme:   cfg.Theme,
		keymap:  keys,
		lang:    cfg.Language,
		t:       t,
		help:    help.New(),
		width:   cfg.Width,
		height:  cfg.Height,
		login: components.NewLoginModel(cfg.Theme, components.LoginKeys{
			Next:   key.NewBinding(key.WithKeys("tab", "down")),
			Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
			Submit: keys.Submit,
			Toggle: keys.ToggleSignUp,
			Google: keys.Google,
			Guest:  keys.Guest,
		}, t, cfg.Google),
		editor: components.NewEditorModel(cfg.Store, cfg.Theme, components.EditorKeys{
			Up:     keys.Up,
			Down:   keys.Down,
			Next:   keys.Next,
			Prev:   keys.Prev,
			Submit: keys.Submit,
			Add:    keys.Add,
			Remove: keys.Remove,
		}, t),
		summary: components.NewSummaryModel(cfg.Theme, t),
	}
	m.summary.SetSummary(cfg.Store.Summary(), t)
	m.syncState()
	m.handleResize()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return waitForURL(m.config.FederatedURLs)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case components.LoginSubmitMsg:
		m.login.SetLoading(true)
		return m, signInCmd(m.ctx, m.session, msg.Email, msg.Password, msg.SignUp)

	case components.GoogleLoginMsg:
		ctx, cancel := context.WithCancel(m.ctx)
		m.cancelAuth = cancel
		m.login.SetLoading(true)
		return m, federatedCmd(ctx, m.session)

	case components.GuestMsg:
		m.session.ContinueAsGuest(m.ctx)
		m.syncState()
		return m, nil

	case federatedURLMsg:
		m.login.SetFederatedURL(msg.url)
		return m, waitForURL(m.config.FederatedURLs)

	case authResultMsg:
		m.finishAuth(msg)
		return m, nil

	}

	var cmd tea.Cmd
	switch m.state {
	case StateLogin:
		m.login, cmd = m.login.Update(msg)
	case StateBudget:
		m.editor, cmd = m.editor.Update(msg)
		m.summary.SetSummary(m.store.Summary(), m.t)
	}
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case StateLogin:
		return m.renderLogin()
	case StateHelp:
		return m.renderHelp()
	default:
		return m.renderBudget()
	}
}

// handleGlobalKeys handles keys that work on every screen. It reports
// whether the key was consumed.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancelPendingAuth()
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		if m.state == StateHelp {
			m.state = m.prevState
		} else {
			m.prevState = m.state
			m.state = StateHelp
		}
		return true, nil
	case key.Matches(msg, m.keymap.Cancel):
		switch {
		case m.state == StateHelp:
			m.state = m.prevState
		case m.login.Loading():
			m.cancelPendingAuth()
		}
		return true, nil
	case key.Matches(msg, m.keymap.Language):
		m.toggleLanguage()
		return true, nil
	}

	if m.state != StateBudget {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Logout):
		if err := m.session.Logout(m.ctx); err != nil {
			m.setStatus(auth.Message(m.lang, err), true)
			return true, nil
		}
		m.syncState()
		return true, nil
	case key.Matches(msg, m.keymap.CreateAccount) && m.session.ShowCreateAccount():
		m.session.ExitGuestMode(m.ctx)
		m.login.SetSignUp(true)
		m.syncState()
		return true, nil
	}
	return false, nil
}

func (m *Model) finishAuth(msg authResultMsg) {
	m.cancelPendingAuth()
	m.login.SetLoading(false)
	if msg.err != nil {
		m.login.SetError(auth.Message(m.lang, msg.err))
		return
	}
	m.login.Reset()
	m.setStatus("", false)
	m.syncState()
}

func (m *Model) cancelPendingAuth() {
	if m.cancelAuth != nil {
		m.cancelAuth()
		m.cancelAuth = nil
	}
}

// syncState moves to the screen the gate allows.
func (m *Model) syncState() {
	target := StateBudget
	if m.session.Mode() == auth.ModeUnauthenticated {
		target = StateLogin
	}
	if m.state == StateHelp {
		m.prevState = target
		return
	}
	m.state = target
}

func (m *Model) toggleLanguage() {
	m.lang = m.lang.Next()
	m.t = i18n.For(m.lang)
	if m.config.KV != nil {
		i18n.Save(m.ctx, m.config.KV, m.lang)
	}
	m.login.SetTranslations(m.t)
	m.editor.SetTranslations(m.t)
	m.summary.SetSummary(m.store.Summary(), m.t)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.help.Width = m.width
	if m.wide() {
		m.editor.Resize(m.width/2 - 2)
		m.summary.Resize(m.width/2 - 2)
		return
	}
	m.editor.Resize(m.width - 2)
	m.summary.Resize(m.width - 2)
}

func (m Model) wide() bool {
	return m.width >= 110
}

// Language returns the language currently shown.
func (m Model) Language() i18n.Language {
	return m.lang
}

// CurrentState returns the screen currently shown.
func (m Model) CurrentState() State {
	return m.state
}
