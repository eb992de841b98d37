package models

// Settings represents application-wide settings
type Settings struct {
	Theme                string `json:"theme"`                 // "dark" or "light"
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local" for the system timezone
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether desktop notifications are enabled
	WaterReminderMin     int    `json:"water_reminder_min"`    // minutes between water reminders (0 disables)
	WaterGoalML          int    `json:"water_goal_ml"`         // daily hydration goal in milliliters
}
