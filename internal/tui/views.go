package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderLogin() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.login.View(),
		m.help.View(loginHelp{keys: m.keymap, google: m.config.Google}),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderBudget() string {
	sections := []string{m.renderHeader()}
	if m.session.ShowCreateAccount() {
		sections = append(sections, m.renderGuestBanner())
	}

	if m.wide() {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), "  ", m.summary.View()))
	} else {
		sections = append(sections, m.editor.View(), m.summary.View())
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render(m.t.AppTitle)

	var right []string
	if identity := m.session.Identity(); identity != nil && !m.session.ShowCreateAccount() {
		right = append(right, m.theme.Normal.Render(m.t.Welcome+", "+identity.Email))
		right = append(right, m.theme.Subtitle.Render(m.t.Logout+" ["+m.keymap.Logout.Help().Key+"]"))
	} else {
		right = append(right, m.theme.Subtitle.Render(m.t.ExitGuestMode+" ["+m.keymap.Logout.Help().Key+"]"))
	}
	right = append(right, m.theme.Bold.Render(strings.ToUpper(string(m.lang.Next()))+" ["+m.keymap.Language.Help().Key+"]"))

	info := strings.Join(right, "  ")
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(info), 1)
	return title + strings.Repeat(" ", gap) + info + "\n"
}

func (m Model) renderGuestBanner() string {
	text := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Bold.Render(m.t.GuestMode),
		m.theme.Normal.Render(m.t.GuestModeDesc),
		m.theme.Focused.Render(m.t.CreateAccount+" ["+m.keymap.CreateAccount.Help().Key+"]"),
	)
	return m.theme.Banner.Width(max(m.width-4, 20)).Render(text)
}

func (m Model) renderStatusBar() string {
	bar := m.help.View(budgetHelp{keys: m.keymap, guest: m.session.ShowCreateAccount()})
	if m.status == "" {
		return bar
	}
	style := m.theme.StatusInfo
	if m.statusErr {
		style = m.theme.StatusError
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status), bar)
}

func (m Model) renderHelp() string {
	bindings := budgetHelp{keys: m.keymap, guest: m.session.ShowCreateAccount()}
	m.help.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(m.t.AppTitle),
		"",
		m.help.View(bindings),
		"",
		m.help.View(loginHelp{keys: m.keymap, google: m.config.Google}),
	)
	return m.theme.RoundedBox.Render(content)
}
