package constants

const (
	// General settings keys
	SettingTheme                = "theme"
	SettingTimezone             = "timezone"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingWaterReminderMin     = "water_reminder_min"
	SettingWaterGoalML          = "water_goal_ml"

	// Default settings values
	DefaultTheme                = "dark"
	DefaultTimezone             = "Local" // use system local timezone by default
	DefaultNotificationsEnabled = true
	DefaultWaterReminderMin     = 90
	DefaultWaterGoalML          = 2000

	// DefaultWaterGlassML is the volume logged by the one-key water shortcut.
	DefaultWaterGlassML = 250
)

const (
	// Default daily goal targets used when the profile has none configured.
	DefaultGoalCalories = 2000
	DefaultGoalProteinG = 100
	DefaultGoalCarbsG   = 220
	DefaultGoalFatG     = 70
	DefaultGoalFiberG   = 28
)
