package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/logger"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/internal/notifier"
	"github.com/julianstephens/cyra/internal/tui/components/cyclelog"
	"github.com/julianstephens/cyra/internal/tui/components/daylog"
	"github.com/julianstephens/cyra/internal/tui/components/settings"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLogFood:
		return m.updateFoodForm(msg)
	case StateLogWorkout:
		return m.updateWorkoutForm(msg)
	case StateEditProfile:
		return m.updateProfileForm(msg)
	case StateEditSettings:
		return m.updateSettingsForm(msg)
	case StateConfirmStart, StateConfirmEnd:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.todayModel.SetSize(msg.Width, contentHeight)
		m.calendarModel.SetSize(msg.Width, contentHeight)
		m.settingsModel.SetSize(msg.Width, contentHeight)
		m.logModel.SetSize(msg.Width-4, contentHeight-2)
		m.cycleModel.SetSize(msg.Width-4, contentHeight-2)

	case reminderTickMsg:
		return m.handleReminder()

	case daylog.AddFoodMsg:
		return m.openFoodForm()
	case daylog.AddWorkoutMsg:
		return m.openWorkoutForm()
	case cyclelog.StartPeriodMsg:
		m.state = StateConfirmStart
		return m, nil
	case cyclelog.EndPeriodMsg:
		m.state = StateConfirmEnd
		return m, nil
	case settings.EditProfileMsg:
		return m.openProfileForm()
	case settings.EditSettingsMsg:
		return m.openSettingsForm()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Drink) && m.state == StateToday:
			m.trk.AddWater(constants.DefaultWaterGlassML)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.todayModel, cmd = m.todayModel.Update(msg)
	case StateCalendar:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
	case StateLog:
		m.logModel, cmd = m.logModel.Update(msg)
	case StateCycle:
		m.cycleModel, cmd = m.cycleModel.Update(msg)
	case StateSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
	}
	return m, cmd
}

// handleReminder fires the hydration notification when the goal is unmet
// and re-arms the tick under the settings in effect now.
func (m Model) handleReminder() (tea.Model, tea.Cmd) {
	s := m.trk.Settings()
	if !s.NotificationsEnabled || s.WaterReminderMin <= 0 {
		m.reminderArmed = false
		return m, nil
	}

	today := m.trk.Today()
	drunk := m.trk.WaterOn(today)
	if drunk < s.WaterGoalML {
		msg := fmt.Sprintf("Time to drink water: %d / %d ml today", drunk, s.WaterGoalML)
		if err := notifier.New().Notify(msg); err != nil {
			logger.Debug("Water reminder not delivered", "error", err)
		}
	}
	return m, m.reminderTick()
}

func (m Model) openFoodForm() (tea.Model, tea.Cmd) {
	m.foodForm = &FoodFormModel{}
	m.form = NewFoodForm(m.foodForm, m.trk.Library(), m.trk.Settings().Theme)
	m.state = StateLogFood
	return m, m.form.Init()
}

func (m Model) openWorkoutForm() (tea.Model, tea.Cmd) {
	m.workoutForm = &WorkoutFormModel{Intensity: "medium"}
	m.form = NewWorkoutForm(m.workoutForm, m.trk.Settings().Theme)
	m.state = StateLogWorkout
	return m, m.form.Init()
}

func (m Model) openProfileForm() (tea.Model, tea.Cmd) {
	p := m.trk.Profile()
	m.profileForm = &ProfileFormModel{
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth,
		Height:      formatFloat(p.HeightCM),
		Weight:      formatFloat(p.WeightKG),
		BodyFat:     formatFloat(p.BodyFatPercent),
		Activity:    p.Activity,
	}
	m.form = NewProfileForm(m.profileForm, m.trk.Settings().Theme)
	m.state = StateEditProfile
	return m, m.form.Init()
}

func (m Model) openSettingsForm() (tea.Model, tea.Cmd) {
	s := m.trk.Settings()
	m.settingsForm = &SettingsFormModel{
		Theme:                s.Theme,
		Timezone:             s.Timezone,
		NotificationsEnabled: s.NotificationsEnabled,
		WaterReminderMin:     strconv.Itoa(s.WaterReminderMin),
		WaterGoalML:          strconv.Itoa(s.WaterGoalML),
	}
	m.form = NewSettingsForm(m.settingsForm, s.Theme)
	m.state = StateEditSettings
	return m, m.form.Init()
}

func (m Model) updateFoodForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateLog
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.foodForm
		var entry models.NutritionEntry
		if fm.Preset != customEntry {
			for _, preset := range m.trk.Library() {
				if preset.Name == fm.Preset {
					entry = models.NutritionEntry{
						Name:     preset.Name,
						Calories: preset.Calories,
						ProteinG: preset.ProteinG,
						CarbsG:   preset.CarbsG,
						FatG:     preset.FatG,
						FiberG:   preset.FiberG,
					}
					break
				}
			}
		} else {
			entry = models.NutritionEntry{
				Name:     strings.TrimSpace(fm.Name),
				Calories: atoiOrZero(fm.Calories),
				ProteinG: floatOrZero(fm.Protein),
				CarbsG:   floatOrZero(fm.Carbs),
				FatG:     floatOrZero(fm.Fat),
				FiberG:   floatOrZero(fm.Fiber),
			}
		}
		m.trk.LogFood(m.trk.Today(), entry)
		m.refresh()
		m.state = StateLog
	case huh.StateAborted:
		m.state = StateLog
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateWorkoutForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateLog
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.workoutForm
		m.trk.LogWorkout(m.trk.Today(), models.WorkoutEntry{
			Type:           strings.TrimSpace(fm.Type),
			DurationMin:    atoiOrZero(fm.Duration),
			Intensity:      fm.Intensity,
			CaloriesBurned: atoiOrZero(fm.Calories),
		})
		m.refresh()
		m.state = StateLog
	case huh.StateAborted:
		m.state = StateLog
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.profileForm
		profile := m.trk.Profile()
		profile.Name = strings.TrimSpace(fm.Name)
		profile.DateOfBirth = strings.TrimSpace(fm.DateOfBirth)
		profile.HeightCM = floatOrZero(fm.Height)
		profile.WeightKG = floatOrZero(fm.Weight)
		profile.BodyFatPercent = floatOrZero(fm.BodyFat)
		profile.Activity = fm.Activity
		m.trk.SetProfile(profile)
		m.refresh()
		m.state = StateSettings
	case huh.StateAborted:
		m.state = StateSettings
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		fm := m.settingsForm
		s := m.trk.Settings()
		s.Theme = fm.Theme
		s.Timezone = strings.TrimSpace(fm.Timezone)
		s.NotificationsEnabled = fm.NotificationsEnabled
		s.WaterReminderMin = atoiOrZero(fm.WaterReminderMin)
		if goal := atoiOrZero(fm.WaterGoalML); goal > 0 {
			s.WaterGoalML = goal
		}
		m.trk.UpdateSettings(s)
		m.refresh()
		m.state = StateSettings

		// Arm the reminder chain when the edit just enabled it; an
		// already-armed chain picks the new interval up on its next fire.
		if !m.reminderArmed {
			if cmd := m.reminderTick(); cmd != nil {
				m.reminderArmed = true
				cmds = append(cmds, cmd)
			}
		}
	case huh.StateAborted:
		m.state = StateSettings
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if m.state == StateConfirmStart {
				m.trk.LogPeriodStart(m.trk.Today())
			} else {
				m.trk.LogPeriodEnd(m.trk.Today())
			}
			m.refresh()
			m.state = StateCycle
		case "n", "N", "q", "esc":
			m.state = StateCycle
		}
	}
	return m, nil
}

func atoiOrZero(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

func floatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
