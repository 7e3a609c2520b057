// Package economy implements the reward economy: XP/coin formulas, the
// level ladder, per-category wallets and levels, the gacha roller, and the
// treasure chest cadence. Everything here is pure logic over domain values;
// the tracker orchestrator owns state and persistence.
package economy

// Effort level bounds. Values outside the range are clamped, keeping the
// formulas total over any input.
const (
	MinEffort = 1
	MaxEffort = 3
)

// CalculateXP converts a session's duration and effort into XP:
// minutes × 5 × effort.
func CalculateXP(durationMinutes, effortLevel int) int64 {
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	return int64(durationMinutes) * 5 * int64(clampEffort(effortLevel))
}

// CalculateCoins converts a session's duration and effort into coins:
// 5 + floor(minutes/10) × effort.
func CalculateCoins(durationMinutes, effortLevel int) int64 {
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	return 5 + int64(durationMinutes/10)*int64(clampEffort(effortLevel))
}

func clampEffort(effort int) int {
	if effort < MinEffort {
		return MinEffort
	}
	if effort > MaxEffort {
		return MaxEffort
	}
	return effort
}
