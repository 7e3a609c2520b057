package economy

import "github.com/trainquest/trainquest/internal/domain"

// The level ladder uses a linear ramp: level L requires 120 + 20×(L−1) XP
// to clear. The child stores cumulative XP; level is re-derived from the
// total whenever needed, so the ladder is the single source of truth.

// XPForLevelStep returns the XP needed to clear the given level.
func XPForLevelStep(level int) int64 {
	if level < 1 {
		level = 1
	}
	return 120 + 20*int64(level-1)
}

// LevelForXP returns the level reached with the given cumulative XP.
func LevelForXP(totalXP int64) int {
	return LevelProgress(totalXP).Level
}

// LevelProgress derives the full ladder position from cumulative XP:
// level, XP into the current level, XP required for the next, and the
// progress fraction. Monotonic and deterministic.
func LevelProgress(totalXP int64) domain.LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	remaining := totalXP
	for remaining >= XPForLevelStep(level) {
		remaining -= XPForLevelStep(level)
		level++
	}

	forNext := XPForLevelStep(level)
	return domain.LevelInfo{
		Level:       level,
		XPIntoLevel: remaining,
		XPForNext:   forNext,
		Progress:    float64(remaining) / float64(forNext),
	}
}

// LevelUps returns how many levels adding gained XP to current XP crosses.
func LevelUps(currentXP, gainedXP int64) int {
	return LevelForXP(currentXP+gainedXP) - LevelForXP(currentXP)
}
