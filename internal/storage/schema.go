// ABOUTME: Schema definition and idempotent initialization for all eight tables.
// ABOUTME: The table registry doubles as the identifier allow-list for dynamic queries.
package storage

import "fmt"

// tableDef describes one table: its DDL plus the column sets used to
// validate identifiers in dynamic operations. Table and column names
// from caller input are only ever used after matching this registry.
type tableDef struct {
	name    string
	ddl     string
	columns []string // every column, including id
	refs    []string // reference columns addressable by GetByForeignKey
}

// tables holds the schema in dependency order, parents before children,
// so creation succeeds with foreign keys enabled.
var tables = []tableDef{
	{
		name: "Users",
		ddl: `CREATE TABLE IF NOT EXISTS Users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			Name TEXT NOT NULL,
			Email TEXT UNIQUE,
			Password TEXT,
			CreatedAt DATETIME DEFAULT CURRENT_TIMESTAMP,
			FitnessLevel TEXT CHECK (FitnessLevel IN ('beginner', 'intermediate', 'advanced')),
			Goals TEXT
		)`,
		columns: []string{"id", "Name", "Email", "Password", "CreatedAt", "FitnessLevel", "Goals"},
	},
	{
		name: "Exercises",
		ddl: `CREATE TABLE IF NOT EXISTS Exercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			Name TEXT NOT NULL,
			Type TEXT NOT NULL CHECK (Type IN ('cardio', 'strength')),
			BodyPart TEXT CHECK (BodyPart IN ('chest', 'back', 'shoulders', 'arms', 'legs', 'core', 'full_body')),
			Instructions TEXT,
			VideoUrl TEXT,
			GifUrl TEXT
		)`,
		columns: []string{"id", "Name", "Type", "BodyPart", "Instructions", "VideoUrl", "GifUrl"},
	},
	{
		name: "SetDetails",
		ddl: `CREATE TABLE IF NOT EXISTS SetDetails (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			MinReps INTEGER NOT NULL,
			MaxReps INTEGER NOT NULL,
			Weight REAL NOT NULL,
			Amrap BOOLEAN NOT NULL DEFAULT 0,
			Paused BOOLEAN NOT NULL DEFAULT 0,
			Fast BOOLEAN NOT NULL DEFAULT 0,
			Forced BOOLEAN NOT NULL DEFAULT 0,
			Dropset BOOLEAN NOT NULL DEFAULT 0
		)`,
		columns: []string{"id", "MinReps", "MaxReps", "Weight", "Amrap", "Paused", "Fast", "Forced", "Dropset"},
	},
	{
		name: "ExerciseDetails",
		ddl: `CREATE TABLE IF NOT EXISTS ExerciseDetails (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ExerciseId INTEGER NOT NULL,
			OrderIndex INTEGER NOT NULL,
			SetDetailId INTEGER NOT NULL,
			FOREIGN KEY (ExerciseId) REFERENCES Exercises(id) ON DELETE CASCADE,
			FOREIGN KEY (SetDetailId) REFERENCES SetDetails(id) ON DELETE CASCADE
		)`,
		columns: []string{"id", "ExerciseId", "OrderIndex", "SetDetailId"},
		refs:    []string{"ExerciseId", "SetDetailId"},
	},
	{
		name: "Workouts",
		ddl: `CREATE TABLE IF NOT EXISTS Workouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			UserId INTEGER NOT NULL,
			Name TEXT NOT NULL,
			FOREIGN KEY (UserId) REFERENCES Users(id) ON DELETE CASCADE
		)`,
		columns: []string{"id", "UserId", "Name"},
		refs:    []string{"UserId"},
	},
	{
		name: "WorkoutPlans",
		ddl: `CREATE TABLE IF NOT EXISTS WorkoutPlans (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			UserId INTEGER NOT NULL,
			Name TEXT NOT NULL,
			Description TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (UserId) REFERENCES Users(id) ON DELETE CASCADE
		)`,
		columns: []string{"id", "UserId", "Name", "Description"},
		refs:    []string{"UserId"},
	},
	{
		name: "CompletedExercises",
		ddl: `CREATE TABLE IF NOT EXISTS CompletedExercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ExerciseId INTEGER NOT NULL,
			OrderIndex INTEGER NOT NULL,
			FOREIGN KEY (ExerciseId) REFERENCES Exercises(id) ON DELETE CASCADE
		)`,
		columns: []string{"id", "ExerciseId", "OrderIndex"},
		refs:    []string{"ExerciseId"},
	},
	{
		// Session references are intentionally not enforced: deleting the
		// user, plan, or workout keeps the session row as history.
		name: "WorkoutSessions",
		ddl: `CREATE TABLE IF NOT EXISTS WorkoutSessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			UserId INTEGER NOT NULL,
			WorkoutPlanId INTEGER NOT NULL,
			WorkoutId INTEGER NOT NULL
		)`,
		columns: []string{"id", "UserId", "WorkoutPlanId", "WorkoutId"},
		refs:    []string{"UserId", "WorkoutPlanId", "WorkoutId"},
	},
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_exercise_details_exercise ON ExerciseDetails(ExerciseId)",
	"CREATE INDEX IF NOT EXISTS idx_exercise_details_set ON ExerciseDetails(SetDetailId)",
	"CREATE INDEX IF NOT EXISTS idx_workouts_user ON Workouts(UserId)",
	"CREATE INDEX IF NOT EXISTS idx_workout_plans_user ON WorkoutPlans(UserId)",
	"CREATE INDEX IF NOT EXISTS idx_completed_exercises_exercise ON CompletedExercises(ExerciseId)",
	"CREATE INDEX IF NOT EXISTS idx_sessions_user ON WorkoutSessions(UserId)",
}

// tableByName looks a table up in the registry by exact name.
func tableByName(name string) (*tableDef, bool) {
	for i := range tables {
		if tables[i].name == name {
			return &tables[i], true
		}
	}
	return nil, false
}

func (t *tableDef) hasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t *tableDef) hasRef(name string) bool {
	for _, c := range t.refs {
		if c == name {
			return true
		}
	}
	return false
}

// initSchema creates tables and indexes one statement at a time. Every
// statement is IF NOT EXISTS, so reopening an initialized database is a
// no-op. The first failure aborts the remainder.
func (s *Store) initSchema() error {
	for i := range tables {
		t := &tables[i]
		if _, err := s.db.Exec(t.ddl); err != nil {
			s.logErr("init schema", t.ddl, nil, err)
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	for _, idx := range indexes {
		if _, err := s.db.Exec(idx); err != nil {
			s.logErr("init schema", idx, nil, err)
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
