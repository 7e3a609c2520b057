package domain

// CategoryCounts holds the monotonically increasing per-category training
// counters for one child. Incremented once per completed session.
type CategoryCounts struct {
	Study    int `json:"study"`
	Exercise int `json:"exercise"`
}

// Count returns the counter for the given category.
func (c CategoryCounts) Count(cat Category) int {
	if cat == CategoryExercise {
		return c.Exercise
	}
	return c.Study
}

// Inc returns a copy with the given category's counter incremented.
func (c CategoryCounts) Inc(cat Category) CategoryCounts {
	if cat == CategoryExercise {
		c.Exercise++
	} else {
		c.Study++
	}
	return c
}

// Wallet is one child's per-category coin and ticket balance.
// TicketProgress rolls over into a ticket at the threshold; Pity counts
// gacha rolls since the last rare-or-better pull.
type Wallet struct {
	Coins          int64 `json:"coins"`
	Tickets        int   `json:"tickets"`
	TicketProgress int   `json:"ticket_progress"`
	Pity           int   `json:"pity"`
}

// CategoryLevelInfo is derived on demand from a training count — never
// persisted. Level L's requirement is L+2 sessions.
type CategoryLevelInfo struct {
	Level     int     `json:"level"`
	IntoLevel int     `json:"into_level"`
	Required  int     `json:"required"`
	Progress  float64 `json:"progress"`
}

// LevelInfo describes a child's position on the XP ladder.
type LevelInfo struct {
	Level       int     `json:"level"`
	XPIntoLevel int64   `json:"xp_into_level"`
	XPForNext   int64   `json:"xp_for_next"`
	Progress    float64 `json:"progress"`
}
