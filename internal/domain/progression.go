package domain

import "time"

// ─── Streak Types ───────────────────────────────────────────────────────────

// Streak tracks consecutive training days for one child.
// Recomputed from the full session list — the computation is idempotent.
type Streak struct {
	Current         int       `json:"current"`
	Best            int       `json:"best"`
	LastSessionDate time.Time `json:"last_session_date"`
}

// ─── Map / Quest Types ──────────────────────────────────────────────────────

// NodeType categorizes a map node. Treasure and boss nodes differ from
// normal ones only in reward size, not mechanics.
type NodeType string

const (
	NodeNormal   NodeType = "normal"
	NodeTreasure NodeType = "treasure"
	NodeBoss     NodeType = "boss"
)

// MapNode is one step of a child's linear quest progression. Progress is
// monotonically non-decreasing and capped at RequiredSessions; once
// Completed flips to true the node is never reopened or re-rewarded.
type MapNode struct {
	ChildID          string   `json:"child_id"`
	StageIndex       int      `json:"stage_index"`
	NodeIndex        int      `json:"node_index"`
	Type             NodeType `json:"type"`
	RequiredSessions int      `json:"required_sessions"`
	Progress         int      `json:"progress"`
	Completed        bool     `json:"completed"`
	RewardXP         int64    `json:"reward_xp"`
	RewardCoins      int64    `json:"reward_coins"`
}

// ─── Achievement Types ──────────────────────────────────────────────────────

// AchievementDef defines one catalog achievement with its unlock predicate.
type AchievementDef struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Icon        string                `json:"icon"`
	Predicate   func(ChildStats) bool `json:"-"`
}

// ChildAchievement records a permanent per-child unlock. At most one record
// exists per (child, achievement) pair; unlocks are never revoked.
type ChildAchievement struct {
	ChildID       string    `json:"child_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
