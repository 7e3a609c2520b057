package domain

// SessionResult is the consolidated outcome of logging one training session:
// the created record plus everything the pipeline granted on top of it.
type SessionResult struct {
	Session              Session          `json:"session"`
	LevelUps             int              `json:"level_ups"`
	CompletedNodes       []MapNode        `json:"completed_nodes"`
	UnlockedAchievements []AchievementDef `json:"unlocked_achievements"`
}

// ChestResult is the outcome of a treasure chest open attempt.
type ChestResult struct {
	Outcome ChestOutcome  `json:"outcome"`
	Opening *ChestOpening `json:"opening,omitempty"`
}

// PurchaseResult is the outcome of a coin skin purchase attempt.
type PurchaseResult struct {
	Outcome PurchaseOutcome `json:"outcome"`
	Skin    *Skin           `json:"skin,omitempty"`
}

// ChildSummary is a read projection for one child: everything a dashboard
// needs in a single call.
type ChildSummary struct {
	Child        Child                       `json:"child"`
	LevelInfo    LevelInfo                   `json:"level_info"`
	Streak       Streak                      `json:"streak"`
	Counts       CategoryCounts              `json:"category_counts"`
	Wallets      map[Category]Wallet         `json:"wallets"`
	CatLevels    map[Category]CategoryLevelInfo `json:"category_levels"`
	Buddy        Buddy                       `json:"buddy"`
	Achievements int                         `json:"achievements_unlocked"`
	CurrentNode  *MapNode                    `json:"current_node,omitempty"`
}
