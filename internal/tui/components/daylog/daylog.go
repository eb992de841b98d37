package daylog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/cyra/internal/models"
)

// AddFoodMsg asks the parent to open the food entry form.
type AddFoodMsg struct{}

// AddWorkoutMsg asks the parent to open the workout entry form.
type AddWorkoutMsg struct{}

type Item struct {
	Food    *models.NutritionEntry
	Workout *models.WorkoutEntry
}

func (i Item) Title() string {
	if i.Food != nil {
		return i.Food.Name
	}
	return "Workout: " + i.Workout.Type
}

func (i Item) Description() string {
	if i.Food != nil {
		return fmt.Sprintf("%d kcal · P %.0fg C %.0fg F %.0fg",
			i.Food.Calories, i.Food.ProteinG, i.Food.CarbsG, i.Food.FatG)
	}
	return fmt.Sprintf("%d min %s · %d kcal burned",
		i.Workout.DurationMin, i.Workout.Intensity, i.Workout.CaloriesBurned)
}

func (i Item) FilterValue() string { return i.Title() }

type KeyMap struct {
	AddFood    key.Binding
	AddWorkout key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddFood: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add food"),
		),
		AddWorkout: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "add workout"),
		),
	}
}

// Model lists one day's logged food and workouts.
type Model struct {
	list list.Model
	keys KeyMap
	date string
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.AddFood, keys.AddWorkout}
	}

	return Model{list: l, keys: keys}
}

// SetEntries rebuilds the list from the date's logs, food first then
// workouts, both in logged order.
func (m *Model) SetEntries(date string, foods []models.NutritionEntry, workouts []models.WorkoutEntry) {
	m.date = date
	items := make([]list.Item, 0, len(foods)+len(workouts))
	for i := range foods {
		items = append(items, Item{Food: &foods[i]})
	}
	for i := range workouts {
		items = append(items, Item{Workout: &workouts[i]})
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
		case key.Matches(msg, m.keys.AddFood):
			return m, func() tea.Msg { return AddFoodMsg{} }
		case key.Matches(msg, m.keys.AddWorkout):
			return m, func() tea.Msg { return AddWorkoutMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return fmt.Sprintf("\n  Nothing logged for %s.\n  Press 'a' to log food or 'w' to log a workout.", m.date)
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
