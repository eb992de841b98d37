package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cyra/internal/models"
)

// EditSettingsMsg asks the parent to open the settings form.
type EditSettingsMsg struct{}

// EditProfileMsg asks the parent to open the profile form.
type EditProfileMsg struct{}

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Width(46)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(16)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0)
)

type KeyMap struct {
	EditSettings key.Binding
	EditProfile  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		EditSettings: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit settings"),
		),
		EditProfile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "edit profile"),
		),
	}
}

// Model displays the profile and application settings read-only; edits go
// through forms the parent owns.
type Model struct {
	settings models.Settings
	profile  models.Profile
	keys     KeyMap
	width    int
	height   int
}

func New() Model {
	return Model{keys: DefaultKeyMap()}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetData(settings models.Settings, profile models.Profile) {
	m.settings = settings
	m.profile = profile
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.EditSettings):
			return m, func() tea.Msg { return EditSettingsMsg{} }
		case key.Matches(msg, m.keys.EditProfile):
			return m, func() tea.Msg { return EditProfileMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	p := m.profile
	bodyFat := "unknown"
	if p.BodyFatPercent > 0 {
		bodyFat = fmt.Sprintf("%.1f%%", p.BodyFatPercent)
	}
	profile := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Profile"),
		row("Name", orDash(p.Name)),
		row("Date of birth", orDash(p.DateOfBirth)),
		row("Height", fmt.Sprintf("%.0f cm", p.HeightCM)),
		row("Weight", fmt.Sprintf("%.1f kg", p.WeightKG)),
		row("Body fat", bodyFat),
		row("Activity", string(p.Activity)),
	)

	s := m.settings
	notifications := "off"
	if s.NotificationsEnabled {
		notifications = "on"
	}
	reminder := "disabled"
	if s.WaterReminderMin > 0 {
		reminder = fmt.Sprintf("every %d min", s.WaterReminderMin)
	}
	app := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Settings"),
		row("Theme", s.Theme),
		row("Timezone", s.Timezone),
		row("Notifications", notifications),
		row("Water reminder", reminder),
		row("Water goal", fmt.Sprintf("%d ml", s.WaterGoalML)),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render(profile),
		sectionStyle.Render(app),
		hintStyle.Render("'p' edit profile · 'e' edit settings"),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func orDash(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
