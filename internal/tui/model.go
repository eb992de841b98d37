package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cyra/internal/logger"
	"github.com/julianstephens/cyra/internal/tracker"
	"github.com/julianstephens/cyra/internal/tui/components/calendar"
	"github.com/julianstephens/cyra/internal/tui/components/cyclelog"
	"github.com/julianstephens/cyra/internal/tui/components/daylog"
	"github.com/julianstephens/cyra/internal/tui/components/settings"
	"github.com/julianstephens/cyra/internal/tui/components/today"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateLog
	StateCycle
	StateSettings
	StateLogFood
	StateLogWorkout
	StateEditProfile
	StateEditSettings
	StateConfirmStart
	StateConfirmEnd
)

// tabCount covers the states reachable by tab cycling; the rest are modal.
const tabCount = 5

type Model struct {
	trk           *tracker.Tracker
	state         SessionState
	keys          KeyMap
	help          help.Model
	todayModel    today.Model
	calendarModel calendar.Model
	logModel      daylog.Model
	cycleModel    cyclelog.Model
	settingsModel settings.Model
	form          *huh.Form
	foodForm      *FoodFormModel
	workoutForm   *WorkoutFormModel
	profileForm   *ProfileFormModel
	settingsForm  *SettingsFormModel
	reminderArmed bool
	quitting      bool
	width         int
	height        int
}

func NewModel(trk *tracker.Tracker) Model {
	trk.Subscribe(func(reason tracker.Reason, snap tracker.Snapshot) {
		logger.Debug("State changed", "reason", reason, "date", snap.Date)
	})

	m := Model{
		trk:           trk,
		state:         StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		todayModel:    today.New(),
		calendarModel: calendar.New(),
		logModel:      daylog.New(0, 0),
		cycleModel:    cyclelog.New(0, 0),
		settingsModel: settings.New(),
	}
	s := trk.Settings()
	m.reminderArmed = s.NotificationsEnabled && s.WaterReminderMin > 0
	m.refresh()
	return m
}

// refresh re-derives every component's data from the tracker. Called once
// at startup and after every mutation.
func (m *Model) refresh() {
	date := m.trk.Today()
	snap := m.trk.Snapshot(date)

	m.todayModel.SetData(snap,
		m.trk.DeficitTarget(date),
		m.trk.StepsOn(date),
		m.trk.SymptomsOn(date),
		m.trk.Settings().WaterGoalML)

	m.calendarModel.SetCycle(m.trk.CycleEvents(), m.trk.PhaseForDate, date)
	m.logModel.SetEntries(date, m.trk.NutritionOn(date), m.trk.WorkoutsOn(date))

	avgLength, avgDuration := m.trk.CycleStats()
	m.cycleModel.SetEvents(m.trk.CycleEvents(), date, avgLength, avgDuration, m.trk.NextPeriod())

	m.settingsModel.SetData(m.trk.Settings(), m.trk.Profile())
}

// activeTab maps modal states back onto the tab they were opened from.
func (m Model) activeTab() SessionState {
	switch m.state {
	case StateLogFood, StateLogWorkout:
		return StateLog
	case StateConfirmStart, StateConfirmEnd:
		return StateCycle
	case StateEditProfile, StateEditSettings:
		return StateSettings
	default:
		return m.state
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Drink)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Drink},
	}
}

func (m Model) Init() tea.Cmd {
	return m.reminderTick()
}

type reminderTickMsg time.Time

// reminderTick schedules the next hydration reminder per the current
// settings, or nothing when reminders are off.
func (m Model) reminderTick() tea.Cmd {
	s := m.trk.Settings()
	if !s.NotificationsEnabled || s.WaterReminderMin <= 0 {
		return nil
	}
	return tea.Tick(time.Duration(s.WaterReminderMin)*time.Minute, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}
