package storage

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/cyra/internal/constants"
	"github.com/julianstephens/cyra/internal/migration"
	"github.com/julianstephens/cyra/internal/models"
	"github.com/julianstephens/cyra/migrations"
)

// SQLiteStore persists the state in a local SQLite database. The state is
// still treated as one logical record: Save rewrites it in a single
// transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed factory state only when the database is empty.
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM settings").Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect settings: %w", err)
	}
	if count == 0 {
		if err := s.Save(FactoryState()); err != nil {
			return fmt.Errorf("failed to seed default state: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'cyra init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.ApplyMigrations(nil)
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

func (s *SQLiteStore) Load() (models.State, error) {
	if err := s.open(); err != nil {
		return models.State{}, err
	}

	state := models.State{Version: SchemaVersion}

	if err := s.loadProfile(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadCycle(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadLogs(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadLibrary(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadSettings(&state); err != nil {
		return models.State{}, err
	}

	FillDefaults(&state)
	return state, nil
}

func (s *SQLiteStore) loadProfile(state *models.State) error {
	row := s.db.QueryRow(`SELECT name, date_of_birth, height_cm, weight_kg, body_fat_percent, activity,
		goal_calories, goal_protein_g, goal_carbs_g, goal_fat_g, goal_fiber_g, goal_water_ml
		FROM profile WHERE id = 1`)

	p := &state.Profile
	var activity string
	err := row.Scan(&p.Name, &p.DateOfBirth, &p.HeightCM, &p.WeightKG, &p.BodyFatPercent, &activity,
		&p.Goals.Calories, &p.Goals.ProteinG, &p.Goals.CarbsG, &p.Goals.FatG, &p.Goals.FiberG, &p.Goals.WaterML)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	p.Activity = models.ActivityLevel(activity)
	return nil
}

func (s *SQLiteStore) loadCycle(state *models.State) error {
	// Ascending kind puts an end before a start on the same date, matching
	// the event log's sort order.
	rows, err := s.db.Query("SELECT date, kind FROM cycle_events ORDER BY date, kind")
	if err != nil {
		return fmt.Errorf("failed to load cycle events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev models.CycleEvent
		var kind string
		if err := rows.Scan(&ev.Date, &kind); err != nil {
			return err
		}
		ev.Kind = models.EventKind(kind)
		state.Cycle.Events = append(state.Cycle.Events, ev)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	row := s.db.QueryRow("SELECT avg_length, avg_duration FROM cycle_stats WHERE id = 1")
	if err := row.Scan(&state.Cycle.AvgLength, &state.Cycle.AvgDuration); err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to load cycle stats: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadLogs(state *models.State) error {
	state.Logs.Nutrition = make(map[string][]models.NutritionEntry)
	state.Logs.Workouts = make(map[string][]models.WorkoutEntry)
	state.Logs.Weight = make(map[string]float64)
	state.Logs.Water = make(map[string]int)
	state.Logs.Steps = make(map[string]int)
	state.Logs.Symptoms = make(map[string][]string)

	rows, err := s.db.Query(`SELECT id, day, name, calories, protein_g, carbs_g, fat_g, fiber_g
		FROM nutrition_entries ORDER BY day, position`)
	if err != nil {
		return fmt.Errorf("failed to load nutrition entries: %w", err)
	}
	for rows.Next() {
		var day string
		var e models.NutritionEntry
		if err := rows.Scan(&e.ID, &day, &e.Name, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FatG, &e.FiberG); err != nil {
			rows.Close()
			return err
		}
		state.Logs.Nutrition[day] = append(state.Logs.Nutrition[day], e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = s.db.Query(`SELECT id, day, type, duration_min, intensity, calories_burned
		FROM workout_entries ORDER BY day, position`)
	if err != nil {
		return fmt.Errorf("failed to load workout entries: %w", err)
	}
	for rows.Next() {
		var day string
		var e models.WorkoutEntry
		if err := rows.Scan(&e.ID, &day, &e.Type, &e.DurationMin, &e.Intensity, &e.CaloriesBurned); err != nil {
			rows.Close()
			return err
		}
		state.Logs.Workouts[day] = append(state.Logs.Workouts[day], e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if err := s.loadScalarLogs(state); err != nil {
		return err
	}

	rows, err = s.db.Query("SELECT day, symptom FROM symptom_logs ORDER BY day, position")
	if err != nil {
		return fmt.Errorf("failed to load symptom logs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var day, symptom string
		if err := rows.Scan(&day, &symptom); err != nil {
			return err
		}
		state.Logs.Symptoms[day] = append(state.Logs.Symptoms[day], symptom)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadScalarLogs(state *models.State) error {
	rows, err := s.db.Query("SELECT day, weight_kg FROM weight_logs")
	if err != nil {
		return fmt.Errorf("failed to load weight logs: %w", err)
	}
	for rows.Next() {
		var day string
		var kg float64
		if err := rows.Scan(&day, &kg); err != nil {
			rows.Close()
			return err
		}
		state.Logs.Weight[day] = kg
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for table, target := range map[string]map[string]int{
		"water_logs": state.Logs.Water,
		"steps_logs": state.Logs.Steps,
	} {
		column := "amount_ml"
		if table == "steps_logs" {
			column = "steps"
		}
		rows, err := s.db.Query(fmt.Sprintf("SELECT day, %s FROM %s", column, table))
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", table, err)
		}
		for rows.Next() {
			var day string
			var value int
			if err := rows.Scan(&day, &value); err != nil {
				rows.Close()
				return err
			}
			target[day] = value
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) loadLibrary(state *models.State) error {
	rows, err := s.db.Query(`SELECT name, calories, protein_g, carbs_g, fat_g, fiber_g
		FROM food_library ORDER BY name_key`)
	if err != nil {
		return fmt.Errorf("failed to load food library: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.FoodPreset
		if err := rows.Scan(&p.Name, &p.Calories, &p.ProteinG, &p.CarbsG, &p.FatG, &p.FiberG); err != nil {
			return err
		}
		state.Library = append(state.Library, p)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadSettings(state *models.State) error {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case constants.SettingTheme:
			state.Settings.Theme = value
		case constants.SettingTimezone:
			state.Settings.Timezone = value
		case constants.SettingNotificationsEnabled:
			state.Settings.NotificationsEnabled = value == "true"
		case constants.SettingWaterReminderMin:
			if n, err := strconv.Atoi(value); err == nil {
				state.Settings.WaterReminderMin = n
			}
		case constants.SettingWaterGoalML:
			if n, err := strconv.Atoi(value); err == nil {
				state.Settings.WaterGoalML = n
			}
		}
	}
	return rows.Err()
}

// Save rewrites the whole state in one transaction. With a single user and
// state this small, replace-everything is simpler and no slower than
// tracking dirty rows.
func (s *SQLiteStore) Save(state models.State) error {
	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"profile", "cycle_events", "cycle_stats", "nutrition_entries", "workout_entries",
		"weight_logs", "water_logs", "steps_logs", "symptom_logs", "food_library", "settings",
	} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	p := state.Profile
	if _, err := tx.Exec(`INSERT INTO profile (id, name, date_of_birth, height_cm, weight_kg, body_fat_percent, activity,
		goal_calories, goal_protein_g, goal_carbs_g, goal_fat_g, goal_fiber_g, goal_water_ml)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.DateOfBirth, p.HeightCM, p.WeightKG, p.BodyFatPercent, string(p.Activity),
		p.Goals.Calories, p.Goals.ProteinG, p.Goals.CarbsG, p.Goals.FatG, p.Goals.FiberG, p.Goals.WaterML); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	for _, ev := range state.Cycle.Events {
		if _, err := tx.Exec("INSERT INTO cycle_events (date, kind) VALUES (?, ?)", ev.Date, string(ev.Kind)); err != nil {
			return fmt.Errorf("failed to save cycle event: %w", err)
		}
	}
	if _, err := tx.Exec("INSERT INTO cycle_stats (id, avg_length, avg_duration) VALUES (1, ?, ?)",
		state.Cycle.AvgLength, state.Cycle.AvgDuration); err != nil {
		return fmt.Errorf("failed to save cycle stats: %w", err)
	}

	for day, entries := range state.Logs.Nutrition {
		for i, e := range entries {
			if _, err := tx.Exec(`INSERT INTO nutrition_entries (id, day, position, name, calories, protein_g, carbs_g, fat_g, fiber_g)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				e.ID, day, i, e.Name, e.Calories, e.ProteinG, e.CarbsG, e.FatG, e.FiberG); err != nil {
				return fmt.Errorf("failed to save nutrition entry: %w", err)
			}
		}
	}
	for day, entries := range state.Logs.Workouts {
		for i, e := range entries {
			if _, err := tx.Exec(`INSERT INTO workout_entries (id, day, position, type, duration_min, intensity, calories_burned)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				e.ID, day, i, e.Type, e.DurationMin, e.Intensity, e.CaloriesBurned); err != nil {
				return fmt.Errorf("failed to save workout entry: %w", err)
			}
		}
	}
	for day, kg := range state.Logs.Weight {
		if _, err := tx.Exec("INSERT INTO weight_logs (day, weight_kg) VALUES (?, ?)", day, kg); err != nil {
			return fmt.Errorf("failed to save weight log: %w", err)
		}
	}
	for day, ml := range state.Logs.Water {
		if _, err := tx.Exec("INSERT INTO water_logs (day, amount_ml) VALUES (?, ?)", day, ml); err != nil {
			return fmt.Errorf("failed to save water log: %w", err)
		}
	}
	for day, steps := range state.Logs.Steps {
		if _, err := tx.Exec("INSERT INTO steps_logs (day, steps) VALUES (?, ?)", day, steps); err != nil {
			return fmt.Errorf("failed to save steps log: %w", err)
		}
	}
	for day, symptoms := range state.Logs.Symptoms {
		for i, symptom := range symptoms {
			if _, err := tx.Exec("INSERT INTO symptom_logs (day, position, symptom) VALUES (?, ?, ?)", day, i, symptom); err != nil {
				return fmt.Errorf("failed to save symptom log: %w", err)
			}
		}
	}

	for _, preset := range state.Library {
		if _, err := tx.Exec(`INSERT INTO food_library (name_key, name, calories, protein_g, carbs_g, fat_g, fiber_g)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			foodNameKey(preset.Name), preset.Name, preset.Calories, preset.ProteinG, preset.CarbsG, preset.FatG, preset.FiberG); err != nil {
			return fmt.Errorf("failed to save food preset: %w", err)
		}
	}

	for key, value := range map[string]string{
		constants.SettingTheme:                state.Settings.Theme,
		constants.SettingTimezone:             state.Settings.Timezone,
		constants.SettingNotificationsEnabled: strconv.FormatBool(state.Settings.NotificationsEnabled),
		constants.SettingWaterReminderMin:     strconv.Itoa(state.Settings.WaterReminderMin),
		constants.SettingWaterGoalML:          strconv.Itoa(state.Settings.WaterGoalML),
	} {
		if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// GetDB exposes the underlying connection for diagnostics and migrations.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

// MigrationRunner returns a runner over the embedded sqlite migrations.
func (s *SQLiteStore) MigrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetDataPath() string {
	return s.path
}

// foodNameKey lowercases a preset name for the case-insensitive uniqueness
// key, mirroring the tracker's library dedup rule.
func foodNameKey(name string) string {
	return strings.ToLower(name)
}
