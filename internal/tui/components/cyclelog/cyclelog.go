package cyclelog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/utils"
)

// StartPeriodMsg asks the parent to log a period start for today.
type StartPeriodMsg struct{}

// EndPeriodMsg asks the parent to log a period end for today.
type EndPeriodMsg struct{}

var statsStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Padding(0, 0, 1, 2)

type Item struct {
	Event models.CycleEvent
	Today string
}

func (i Item) Title() string {
	if i.Event.Kind == models.EventStart {
		return "Period start · " + i.Event.Date
	}
	return "Period end · " + i.Event.Date
}

func (i Item) Description() string {
	days := utils.DaysBetween(i.Event.Date, i.Today)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	default:
		return "in the future"
	}
}

func (i Item) FilterValue() string { return i.Event.Date }

type KeyMap struct {
	Start key.Binding
	End   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "period started"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "period ended"),
		),
	}
}

// Model shows the period event history newest-first with the learned
// averages above it.
type Model struct {
	list        list.Model
	keys        KeyMap
	avgLength   int
	avgDuration int
	nextPeriod  string
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Start, keys.End}
	}

	return Model{list: l, keys: keys}
}

// SetEvents rebuilds the history display, newest first.
func (m *Model) SetEvents(events []models.CycleEvent, today string, avgLength, avgDuration int, nextPeriod string) {
	m.avgLength = avgLength
	m.avgDuration = avgDuration
	m.nextPeriod = nextPeriod

	items := make([]list.Item, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		items = append(items, Item{Event: events[i], Today: today})
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Start):
			return m, func() tea.Msg { return StartPeriodMsg{} }
		case key.Matches(msg, m.keys.End):
			return m, func() tea.Msg { return EndPeriodMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	stats := fmt.Sprintf("avg cycle %d days · avg period %d days", m.avgLength, m.avgDuration)
	if m.nextPeriod != "" {
		stats += " · next ~" + m.nextPeriod
	}

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = "\n  No cycle events yet.\n  Press 's' when your period starts."
	}

	return lipgloss.JoinVertical(lipgloss.Left, statsStyle.Render(stats), body)
}

func (m *Model) SetSize(width, height int) {
	// Reserve two rows for the stats header.
	m.list.SetSize(width, height-2)
}
