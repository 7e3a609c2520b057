package domain

// Buddy is the child's collectible companion character. Level and XP mirror
// the child's own progression; Mood (0–100) only ever increases from pet,
// feed, and training actions. StageIndex never decreases.
type Buddy struct {
	ChildID    string `json:"child_id"`
	Level      int    `json:"level"`
	XP         int64  `json:"xp"`
	Mood       int    `json:"mood"`
	SkinID     string `json:"skin_id"`
	StageIndex int    `json:"stage_index"`
}

// CareOutcome is the typed result tag for buddy care actions.
type CareOutcome string

const (
	CareOK             CareOutcome = "ok"
	CareNotEnoughCoins CareOutcome = "not_enough_coins"
)

// CareResult is the outcome of a pet or feed action.
type CareResult struct {
	Outcome CareOutcome `json:"outcome"`
	Buddy   Buddy       `json:"buddy"`
}
