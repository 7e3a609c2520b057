package economy

import "github.com/trainquest/trainquest/internal/domain"

// TicketThreshold is how many completed sessions roll over into one ticket.
const TicketThreshold = 3

// GachaUnlockLevel is the category level at which gacha becomes available.
const GachaUnlockLevel = 2

// CategoryForDomain maps an activity domain to its economy category.
// Physical domains map to exercise; everything else counts as study.
func CategoryForDomain(activityDomain string) domain.Category {
	switch activityDomain {
	case "sports", "exercise", "fitness", "outdoor":
		return domain.CategoryExercise
	default:
		return domain.CategoryStudy
	}
}

// CategoryLevel derives the category level from a training counter via the
// triangular ramp: level L requires L+2 sessions beyond the total consumed
// by lower levels. Pure function of the counter.
func CategoryLevel(count int) domain.CategoryLevelInfo {
	if count < 0 {
		count = 0
	}

	level := 1
	remaining := count
	for remaining >= level+2 {
		remaining -= level + 2
		level++
	}

	required := level + 2
	return domain.CategoryLevelInfo{
		Level:     level,
		IntoLevel: remaining,
		Required:  required,
		Progress:  float64(remaining) / float64(required),
	}
}

// CreditSession applies one completed session to a wallet: coins earned plus
// one step of ticket progress, rolling over into a ticket at the threshold.
func CreditSession(w domain.Wallet, coins int64) domain.Wallet {
	w.Coins += coins
	w.TicketProgress++
	if w.TicketProgress >= TicketThreshold {
		w.Tickets++
		w.TicketProgress = 0
	}
	return w
}
