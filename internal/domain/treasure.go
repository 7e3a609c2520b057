package domain

import "time"

// ChestKind is the size tier of a treasure chest.
type ChestKind string

const (
	ChestSmall  ChestKind = "small"
	ChestMedium ChestKind = "medium"
	ChestLarge  ChestKind = "large"
)

// ChestRewardType identifies what a chest reward entry grants.
type ChestRewardType string

const (
	RewardCoins   ChestRewardType = "coins"
	RewardTickets ChestRewardType = "tickets"
	RewardBuddyXP ChestRewardType = "buddy_xp"
)

// ChestReward is one entry of a chest's reward bundle. Category is set only
// for ticket rewards, which land in a specific category wallet.
type ChestReward struct {
	Type     ChestRewardType `json:"type"`
	Category Category        `json:"category,omitempty"`
	Amount   int64           `json:"amount"`
}

// ChestOpening is an append-only history entry for one opened chest.
type ChestOpening struct {
	ID       string        `json:"id"`
	Index    int           `json:"index"`
	Kind     ChestKind     `json:"kind"`
	OpenedAt time.Time     `json:"opened_at"`
	Rewards  []ChestReward `json:"rewards"`
}

// TreasureState is the app-wide chest cadence: every completed session
// increments Progress regardless of child or category. After an opening,
// excess progress carries over (progress − target), never a hard reset.
type TreasureState struct {
	ChestIndex int            `json:"chest_index"`
	Progress   int            `json:"progress"`
	History    []ChestOpening `json:"history"`
}

// ChestOutcome is the typed result tag for an open attempt.
type ChestOutcome string

const (
	ChestOpened   ChestOutcome = "opened"
	ChestNotReady ChestOutcome = "not_ready"
)
