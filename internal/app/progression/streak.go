// Package progression implements per-child progression: the streak tracker,
// the quest map state machine, and the achievement unlocker. Pure logic over
// domain values, orchestrated by the tracker.
package progression

import (
	"sort"
	"time"

	"github.com/trainquest/trainquest/internal/domain"
)

// ComputeStreak recomputes a child's streak from their full session list.
// Idempotent: the input order never affects the result.
//
// Best is the longest run of calendar-day-adjacent training days. Current is
// the run ending today — or ending yesterday, which still counts as an
// active streak until the day is actually missed.
func ComputeStreak(sessions []domain.Session, today time.Time) domain.Streak {
	days := make(map[string]bool)
	var last time.Time
	for _, s := range sessions {
		if s.Status != domain.SessionCompleted {
			continue
		}
		days[s.DateKey] = true
		if s.Date.After(last) {
			last = s.Date
		}
	}
	if len(days) == 0 {
		return domain.Streak{}
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := 1
	run := 1
	for i := 1; i < len(keys); i++ {
		if keys[i] == nextDayKey(keys[i-1]) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	current := 0
	anchor := today.Format(domain.DateKeyFormat)
	if !days[anchor] {
		anchor = today.AddDate(0, 0, -1).Format(domain.DateKeyFormat)
	}
	for days[anchor] {
		current++
		anchor = prevDayKey(anchor)
	}

	return domain.Streak{Current: current, Best: best, LastSessionDate: last}
}

func nextDayKey(key string) string {
	t, err := time.Parse(domain.DateKeyFormat, key)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(domain.DateKeyFormat)
}

func prevDayKey(key string) string {
	t, err := time.Parse(domain.DateKeyFormat, key)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(domain.DateKeyFormat)
}
