// Package metrics provides Prometheus metrics for TrainQuest: counters for
// the progression economy and the persistence path, exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Sessions & Progression ─────────────────────────────────────────────────

// SessionsLogged tracks logged sessions by status (completed/planned).
var SessionsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "sessions_logged_total",
	Help:      "Total training sessions logged.",
}, []string{"status"})

// XPGranted tracks total XP granted, including node bonuses.
var XPGranted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "xp_granted_total",
	Help:      "Total XP granted across all children.",
})

// CoinsGranted tracks total coins granted, including node bonuses.
var CoinsGranted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "coins_granted_total",
	Help:      "Total coins granted across all children.",
})

// LevelUps tracks level-up events.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "level_ups_total",
	Help:      "Total level-ups across all children.",
})

// NodesCompleted tracks completed quest map nodes by node type.
var NodesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "map_nodes_completed_total",
	Help:      "Total quest map nodes completed.",
}, []string{"type"})

// AchievementsUnlocked tracks achievement unlocks.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// ─── Gacha & Treasure ───────────────────────────────────────────────────────

// GachaRolls tracks gacha rolls by outcome.
var GachaRolls = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "gacha_rolls_total",
	Help:      "Total gacha rolls by outcome.",
}, []string{"outcome"})

// ChestsOpened tracks opened treasure chests by kind.
var ChestsOpened = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "chests_opened_total",
	Help:      "Total treasure chests opened.",
}, []string{"kind"})

// ─── Persistence ────────────────────────────────────────────────────────────

// PersistWrites tracks successful snapshot writes.
var PersistWrites = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "persist_writes_total",
	Help:      "Total successful snapshot writes.",
})

// PersistFailures tracks failed snapshot writes (logged and swallowed).
var PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "trainquest",
	Name:      "persist_failures_total",
	Help:      "Total failed snapshot writes.",
})
