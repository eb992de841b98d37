package today

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cyra/internal/tracker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(44).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	overStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	barFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const barWidth = 20

// Model is the read-only daily dashboard. It renders a snapshot and never
// mutates anything itself; the parent refreshes it after each change.
type Model struct {
	snap      tracker.Snapshot
	deficit   int
	steps     int
	symptoms  []string
	waterGoal int
	width     int
	height    int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the rendered snapshot and its companion figures.
func (m *Model) SetData(snap tracker.Snapshot, deficit, steps int, symptoms []string, waterGoal int) {
	m.snap = snap
	m.deficit = deficit
	m.steps = steps
	m.symptoms = symptoms
	m.waterGoal = waterGoal
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	s := m.snap

	title := fmt.Sprintf("Today · %s", s.Date)
	if s.Profile.Name != "" {
		title = fmt.Sprintf("%s · %s", s.Profile.Name, s.Date)
	}

	cycleLine := prettyPhase(string(s.Phase))
	if s.CycleDay > 0 {
		cycleLine = fmt.Sprintf("%s · day %d", cycleLine, s.CycleDay)
	}
	if s.NextPeriod != "" {
		cycleLine += fmt.Sprintf("\nnext period ~%s", s.NextPeriod)
	}

	eatenStyle := valueStyle
	if m.deficit > 0 && s.Totals.Calories > m.deficit {
		eatenStyle = overStyle
	}

	rows := []string{
		labelStyle.Render("Eaten") + eatenStyle.Render(fmt.Sprintf("%d kcal of %d target (TDEE %d)", s.Totals.Calories, m.deficit, s.Estimate.TDEE)),
		row("Macros", fmt.Sprintf("P %.0fg · C %.0fg · F %.0fg · fiber %.0fg",
			s.Totals.ProteinG, s.Totals.CarbsG, s.Totals.FatG, s.Totals.FiberG)),
		row("Burned", fmt.Sprintf("%d kcal in workouts", s.Totals.CaloriesBurned)),
		labelStyle.Render("Water") + fmt.Sprintf("%s %d / %d ml", bar(s.WaterML, m.waterGoal), s.WaterML, m.waterGoal),
		row("Steps", fmt.Sprintf("%d", m.steps)),
	}
	if len(m.symptoms) > 0 {
		rows = append(rows, row("Symptoms", strings.Join(m.symptoms, ", ")))
	}

	sections := []string{
		titleStyle.Render(title),
		phaseStyle.Render(cycleLine),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	}
	if s.Warning != "" {
		sections = append(sections, "", warningStyle.Render("⚠ "+s.Warning))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// bar renders a fixed-width fill gauge, clamped at full.
func bar(current, goal int) string {
	filled := 0
	if goal > 0 {
		filled = current * barWidth / goal
	}
	if filled > barWidth {
		filled = barWidth
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

func prettyPhase(phase string) string {
	if phase == "" {
		return "No cycle data yet"
	}
	return strings.ToUpper(phase[:1]) + phase[1:]
}
