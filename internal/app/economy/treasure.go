package economy

import (
	"math/rand"
	"time"

	"github.com/trainquest/trainquest/internal/domain"
)

// chestCycle is the fixed kind pattern the chest index walks through.
var chestCycle = [5]domain.ChestKind{
	domain.ChestSmall,
	domain.ChestSmall,
	domain.ChestMedium,
	domain.ChestMedium,
	domain.ChestLarge,
}

// ChestKindAt returns the chest kind for an index. Periodic with period 5.
func ChestKindAt(index int) domain.ChestKind {
	return chestCycle[((index%5)+5)%5]
}

// ChestTarget returns the session count needed to fill a chest of a kind.
func ChestTarget(kind domain.ChestKind) int {
	switch kind {
	case domain.ChestMedium:
		return 4
	case domain.ChestLarge:
		return 6
	default:
		return 3
	}
}

// CurrentTarget returns the target for the chest at the current index.
func CurrentTarget(state domain.TreasureState) int {
	return ChestTarget(ChestKindAt(state.ChestIndex))
}

// ChestOpenable reports whether the current chest has filled. Opening is
// checked, never auto-triggered.
func ChestOpenable(state domain.TreasureState) bool {
	return state.Progress >= CurrentTarget(state)
}

// OpenChest opens the current chest if it is full. On success it returns the
// advanced state and the history entry; progress carries over the excess
// (progress − target) so banked sessions are never lost.
func OpenChest(state domain.TreasureState, rng *rand.Rand, now time.Time, openingID string) (domain.TreasureState, *domain.ChestOpening, domain.ChestOutcome) {
	if !ChestOpenable(state) {
		return state, nil, domain.ChestNotReady
	}

	kind := ChestKindAt(state.ChestIndex)
	opening := domain.ChestOpening{
		ID:       openingID,
		Index:    state.ChestIndex,
		Kind:     kind,
		OpenedAt: now,
		Rewards:  chestRewards(kind, rng),
	}

	state.History = append(state.History, opening)
	state.Progress -= ChestTarget(kind)
	state.ChestIndex++
	return state, &opening, domain.ChestOpened
}

// chestRewards builds the reward bundle for a chest kind. Coin amounts get
// a small jitter; ticket and buddy XP entries are fixed per kind.
func chestRewards(kind domain.ChestKind, rng *rand.Rand) []domain.ChestReward {
	ticketCat := domain.CategoryStudy
	if rng.Intn(2) == 1 {
		ticketCat = domain.CategoryExercise
	}

	switch kind {
	case domain.ChestLarge:
		return []domain.ChestReward{
			{Type: domain.RewardCoins, Amount: int64(60 + rng.Intn(21))},
			{Type: domain.RewardTickets, Category: ticketCat, Amount: 2},
			{Type: domain.RewardBuddyXP, Amount: 50},
		}
	case domain.ChestMedium:
		return []domain.ChestReward{
			{Type: domain.RewardCoins, Amount: int64(25 + rng.Intn(11))},
			{Type: domain.RewardTickets, Category: ticketCat, Amount: 1},
		}
	default:
		return []domain.ChestReward{
			{Type: domain.RewardCoins, Amount: int64(10 + rng.Intn(6))},
		}
	}
}
