package progression

import (
	"time"

	"github.com/trainquest/trainquest/internal/domain"
)

// AchievementCatalog returns the full achievement catalog. Predicates run
// against a freshly computed ChildStats after every pipeline — cheap,
// unconditional re-evaluation keeps the unlock check side-effect-free.
func AchievementCatalog() []domain.AchievementDef {
	return []domain.AchievementDef{
		{
			ID: "first_session", Name: "First Steps", Icon: "🎯",
			Description: "Complete your first training session",
			Predicate:   func(s domain.ChildStats) bool { return s.SessionCount >= 1 },
		},
		{
			ID: "sessions_10", Name: "Regular Trainer", Icon: "📅",
			Description: "Complete 10 training sessions",
			Predicate:   func(s domain.ChildStats) bool { return s.SessionCount >= 10 },
		},
		{
			ID: "minutes_100", Name: "Marathon Mind", Icon: "⏱️",
			Description: "Train for 100 minutes in total",
			Predicate:   func(s domain.ChildStats) bool { return s.TotalMinutes >= 100 },
		},
		{
			ID: "streak_3", Name: "On a Roll", Icon: "🔥",
			Description: "Train 3 days in a row",
			Predicate:   func(s domain.ChildStats) bool { return s.CurrentStreak >= 3 },
		},
		{
			ID: "streak_7", Name: "Week Warrior", Icon: "💪",
			Description: "Train 7 days in a row",
			Predicate:   func(s domain.ChildStats) bool { return s.CurrentStreak >= 7 },
		},
		{
			ID: "nodes_3", Name: "Pathfinder", Icon: "🗺️",
			Description: "Complete 3 quest map nodes",
			Predicate:   func(s domain.ChildStats) bool { return s.CompletedNodes >= 3 },
		},
		{
			ID: "stage_zero_clear", Name: "Stage Cleared", Icon: "🏆",
			Description: "Complete every node of the first stage",
			Predicate:   func(s domain.ChildStats) bool { return s.StageZeroClear },
		},
	}
}

// ComputeStats builds the aggregate snapshot achievement predicates run on.
func ComputeStats(snap *domain.Snapshot, childID string, today time.Time) domain.ChildStats {
	sessions := snap.SessionsForChild(childID)

	count := 0
	minutes := 0
	for _, s := range sessions {
		if s.Status != domain.SessionCompleted {
			continue
		}
		count++
		minutes += s.DurationMinutes
	}

	level := 1
	if c := snap.ChildByID(childID); c != nil {
		level = c.Level
	}

	return domain.ChildStats{
		SessionCount:   count,
		TotalMinutes:   minutes,
		CurrentStreak:  ComputeStreak(sessions, today).Current,
		CompletedNodes: CompletedCount(snap.MapNodes, childID),
		StageZeroClear: StageClear(snap.MapNodes, childID, 0),
		Level:          level,
	}
}

// CheckUnlocks evaluates every catalog predicate against the stats and
// returns the defs that are newly true and not yet in the unlock set.
// Already-unlocked achievements are skipped — unlocks are permanent.
func CheckUnlocks(stats domain.ChildStats, unlocked map[string]bool) []domain.AchievementDef {
	var newly []domain.AchievementDef
	for _, def := range AchievementCatalog() {
		if unlocked[def.ID] {
			continue
		}
		if def.Predicate != nil && def.Predicate(stats) {
			newly = append(newly, def)
		}
	}
	return newly
}
