package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var tabTitles = []string{"Today", "Calendar", "Log", "Cycle", "Settings"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.todayModel.View()
	case StateCalendar:
		content = m.calendarModel.View()
	case StateLog:
		content = docStyle.Render(m.logModel.View())
	case StateCycle:
		content = docStyle.Render(m.cycleModel.View())
	case StateSettings:
		content = m.settingsModel.View()
	case StateLogFood, StateLogWorkout, StateEditProfile, StateEditSettings:
		content = docStyle.Render(m.form.View())
	case StateConfirmStart:
		content = m.viewConfirm("Log a period start for today?")
	case StateConfirmEnd:
		content = m.viewConfirm("Log a period end for today?")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.activeTab()
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	if warning := m.trk.Warning(); warning != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, warningStyle.Render("  ⚠ "+warning))
	}
	return row
}

func (m Model) viewConfirm(question string) string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(question),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
