// Package domain holds the pure types of the TrainQuest progression core.
// No infrastructure imports — every type here is a plain value that can be
// snapshotted, cloned, and serialized as JSON.
package domain

import "time"

// Child is one tracked child profile. XP is cumulative; Level is derived
// from XP via the level ladder and stored for quick reads.
type Child struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	XP            int64     `json:"xp"`
	Level         int       `json:"level"`
	Coins         int64     `json:"coins"`
	CurrentStreak int       `json:"current_streak"`
	BestStreak    int       `json:"best_streak"`
	TotalMinutes  int       `json:"total_minutes"`
	CreatedAt     time.Time `json:"created_at"`
}

// ChildStats is the aggregate snapshot fed to achievement predicates.
// Recomputed from scratch after every pipeline run — cheap at this scale.
type ChildStats struct {
	SessionCount   int  `json:"session_count"`
	TotalMinutes   int  `json:"total_minutes"`
	CurrentStreak  int  `json:"current_streak"`
	CompletedNodes int  `json:"completed_nodes"`
	StageZeroClear bool `json:"stage_zero_clear"`
	Level          int  `json:"level"`
}
