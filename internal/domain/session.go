package domain

import "time"

// SessionStatus distinguishes completed sessions from planned ones.
type SessionStatus string

const (
	SessionCompleted SessionStatus = "completed"
	SessionPlanned   SessionStatus = "planned"
)

// DateKeyFormat is the calendar-day key used for streak computation.
const DateKeyFormat = "2006-01-02"

// Session is an immutable record of one training activity. Planned sessions
// carry zero duration, effort, and rewards until they are completed.
// Only Note may be edited after creation.
type Session struct {
	ID              string        `json:"id"`
	ChildID         string        `json:"child_id"`
	ActivityID      string        `json:"activity_id"`
	Date            time.Time     `json:"date"`
	DateKey         string        `json:"date_key"`
	DurationMinutes int           `json:"duration_minutes"`
	EffortLevel     int           `json:"effort_level"`
	XPGained        int64         `json:"xp_gained"`
	CoinsGained     int64         `json:"coins_gained"`
	Note            string        `json:"note,omitempty"`
	Tags            []string      `json:"tags,omitempty"`
	Status          SessionStatus `json:"status"`
}

// Category is the coarse activity grouping used for segregated economies.
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryExercise Category = "exercise"
)

// Categories lists all categories in a fixed order.
func Categories() []Category {
	return []Category{CategoryStudy, CategoryExercise}
}

// Activity is a static catalog entry. Its Domain determines the category
// (e.g. "sports" activities map to exercise).
type Activity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}
