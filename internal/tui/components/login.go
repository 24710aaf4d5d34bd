package components

import (
	"strings"

	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginKeys are the bindings the login form reacts to.
type LoginKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Toggle key.Binding
	Google key.Binding
	Guest  key.Binding
}

// LoginModel is the email/password form with the alternative sign-in paths.
type LoginModel struct {
	theme     themes.Theme
	keys      LoginKeys
	t         i18n.Translations
	err       string
	federated string
	inputs    []textinput.Model
	focus     int
	signUp    bool
	loading   bool
	google    bool
}

// NewLoginModel creates the login form.
func NewLoginModel(theme themes.Theme, keys LoginKeys, t i18n.Translations, google bool) LoginModel {
	email := newInput(theme, "", 32)
	password := newInput(theme, "", 32)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := LoginModel{
		theme:  theme,
		keys:   keys,
		google: google,
		inputs: []textinput.Model{email, password},
	}
	m.SetTranslations(t)
	m.inputs[loginEmail].Focus()
	return m
}

// SetTranslations switches the form language.
func (m *LoginModel) SetTranslations(t i18n.Translations) {
	m.t = t
	m.inputs[loginEmail].Placeholder = t.Email
	m.inputs[loginPassword].Placeholder = t.Password
}

// SetSignUp selects between the sign-in and sign-up forms.
func (m *LoginModel) SetSignUp(signUp bool) {
	m.signUp = signUp
	m.err = ""
}

// SignUp reports whether the form is in sign-up mode.
func (m LoginModel) SignUp() bool {
	return m.signUp
}

// SetLoading marks an attempt in flight.
func (m *LoginModel) SetLoading(loading bool) {
	m.loading = loading
	if !loading {
		m.federated = ""
	}
}

// Loading reports whether an attempt is in flight.
func (m LoginModel) Loading() bool {
	return m.loading
}

// SetError shows a localized failure under the form.
func (m *LoginModel) SetError(msg string) {
	m.err = msg
}

// Error returns the message currently shown.
func (m LoginModel) Error() string {
	return m.err
}

// SetFederatedURL shows the consent URL of a federated sign-in.
func (m *LoginModel) SetFederatedURL(url string) {
	m.federated = url
}

// Reset clears the form after a successful sign-in.
func (m *LoginModel) Reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.err = ""
	m.federated = ""
	m.loading = false
	m.setFocus(loginEmail)
}

func (m *LoginModel) setFocus(i int) {
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// Update handles form input.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Toggle):
		m.SetSignUp(!m.signUp)
		return m, nil
	case key.Matches(keyMsg, m.keys.Guest):
		return m, func() tea.Msg { return GuestMsg{} }
	case key.Matches(keyMsg, m.keys.Google):
		if !m.google {
			return m, nil
		}
		m.err = ""
		return m, func() tea.Msg { return GoogleLoginMsg{} }
	case key.Matches(keyMsg, m.keys.Submit):
		if m.focus == loginEmail {
			m.setFocus(loginPassword)
			return m, nil
		}
		submit := LoginSubmitMsg{
			Email:    strings.TrimSpace(m.inputs[loginEmail].Value()),
			Password: m.inputs[loginPassword].Value(),
			SignUp:   m.signUp,
		}
		m.err = ""
		return m, func() tea.Msg { return submit }
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View renders the form.
func (m LoginModel) View() string {
	title := m.t.SignIn
	toggle := m.t.DontHaveAccount
	if m.signUp {
		title = m.t.SignUp
		toggle = m.t.AlreadyHaveAccount
	}

	lines := []string{
		m.theme.Title.Render(m.t.AppTitle),
		m.theme.Subtitle.Render(m.t.ManageYourBudget),
		"",
		m.theme.Bold.Render(title),
		m.theme.Label.Render(m.t.Email),
		field(m.theme, m.inputs[loginEmail]),
		m.theme.Label.Render(m.t.Password),
		field(m.theme, m.inputs[loginPassword]),
		"",
	}

	switch {
	case m.loading:
		lines = append(lines, m.theme.StatusInfo.Render(m.t.Loading))
		if m.federated != "" {
			lines = append(lines, m.theme.Subtitle.Render(m.federated))
		}
	case m.err != "":
		lines = append(lines, m.theme.StatusError.Render(m.err))
	}

	lines = append(lines,
		"",
		m.theme.Subtitle.Render(toggle+" ["+m.keys.Toggle.Help().Key+"]"),
		m.theme.Subtitle.Render("─── "+m.t.Or+" ───"),
	)
	if m.google {
		lines = append(lines, m.theme.Normal.Render(m.t.ContinueWithGoogle+" ["+m.keys.Google.Help().Key+"]"))
	}
	lines = append(lines,
		m.theme.Normal.Render(m.t.ContinueWithoutAccount+" ["+m.keys.Guest.Help().Key+"]"),
		m.theme.Subtitle.Render(m.t.DataSavedLocally),
	)

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
