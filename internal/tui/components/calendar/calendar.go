package calendar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0).
			Align(lipgloss.Center)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	outsideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Bold(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0)

	phaseStyles = map[models.Phase]lipgloss.Style{
		models.PhaseMenstrual:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		models.PhaseFollicular: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		models.PhaseOvulation:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		models.PhaseLuteal:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	}
)

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "jump to today"),
		),
	}
}

// Model renders one month with every day colored by its resolved cycle
// phase. Logged period events are marked so the user can tell recorded
// bleeding apart from projection.
type Model struct {
	month    time.Time // first day of the displayed month
	today    string
	phaseFor func(date string) models.Phase
	logged   map[string]models.EventKind
	keys     KeyMap
	width    int
	height   int
}

func New() Model {
	now := time.Now()
	return Model{
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		keys:   DefaultKeyMap(),
		logged: make(map[string]models.EventKind),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetCycle replaces the phase resolver and the logged-event markers.
func (m *Model) SetCycle(events []models.CycleEvent, phaseFor func(string) models.Phase, today string) {
	m.phaseFor = phaseFor
	m.today = today
	m.logged = make(map[string]models.EventKind, len(events))
	for _, ev := range events {
		m.logged[ev.Date] = ev.Kind
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.month = m.month.AddDate(0, -1, 0)
		case key.Matches(msg, m.keys.NextMonth):
			m.month = m.month.AddDate(0, 1, 0)
		case key.Matches(msg, m.keys.Today):
			now := time.Now()
			m.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
	}
	return m, nil
}

func (m Model) View() string {
	header := titleStyle.Width(7 * 4).Render(m.month.Format("January 2006"))
	weekdays := weekdayStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa")

	// Pad the grid back to the Sunday on-or-before the 1st and forward to
	// the Saturday on-or-after the last day, so every row holds 7 cells.
	first := m.month.AddDate(0, 0, -int(m.month.Weekday()))
	monthEnd := m.month.AddDate(0, 1, -1)
	last := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	var rows []string
	var week string
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		week += m.renderDay(day)
		if day.Weekday() == time.Saturday {
			rows = append(rows, week)
			week = ""
		}
	}

	legend := legendStyle.Render(m.legend())

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{header, weekdays}, append(rows, legend)...)...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderDay produces one fixed-width cell. Logged period events carry a dot
// marker; days outside the displayed month are dimmed and unclassified.
func (m Model) renderDay(day time.Time) string {
	date := day.Format(constants.DateFormat)
	cell := fmt.Sprintf(" %2d ", day.Day())
	if _, ok := m.logged[date]; ok {
		cell = fmt.Sprintf(" %2d·", day.Day())
	}

	if day.Month() != m.month.Month() {
		return outsideStyle.Render(cell)
	}
	if date == m.today {
		return todayStyle.Render(cell)
	}
	if m.phaseFor != nil {
		if style, ok := phaseStyles[m.phaseFor(date)]; ok {
			return style.Render(cell)
		}
	}
	return cell
}

func (m Model) legend() string {
	return phaseStyles[models.PhaseMenstrual].Render("● menstrual") + "  " +
		phaseStyles[models.PhaseFollicular].Render("● follicular") + "  " +
		phaseStyles[models.PhaseOvulation].Render("● ovulation") + "  " +
		phaseStyles[models.PhaseLuteal].Render("● luteal") + "\n" +
		"· logged event"
}
