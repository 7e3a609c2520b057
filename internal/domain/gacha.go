package domain

import "time"

// ─── Skin Types ─────────────────────────────────────────────────────────────

// Rarity tiers, ordered. RarityAtLeast relies on this ordering.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityRank maps rarity to its order for comparisons.
var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityRare:      1,
	RarityEpic:      2,
	RarityLegendary: 3,
}

// RarityAtLeast reports whether r is at least min (rare-or-better checks).
func RarityAtLeast(r, min Rarity) bool {
	return rarityRank[r] >= rarityRank[min]
}

// UnlockMethod describes how a skin can be acquired.
type UnlockMethod string

const (
	UnlockDefault  UnlockMethod = "default"
	UnlockGacha    UnlockMethod = "gacha"
	UnlockPurchase UnlockMethod = "purchase"
)

// Skin is a static catalog entry for a buddy cosmetic line.
// GachaWeight of 0 means the uniform fallback weight applies.
type Skin struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Line          string       `json:"line"`
	Category      Category     `json:"category"`
	Rarity        Rarity       `json:"rarity"`
	MinLevel      int          `json:"min_level"`
	GachaWeight   int          `json:"gacha_weight"`
	UnlockMethod  UnlockMethod `json:"unlock_method"`
	Price         int64        `json:"price"`
	EvolveAtLevel int          `json:"evolve_at_level"`
	MaxStages     int          `json:"max_stages"`
}

// OwnedSkin records ownership; presence implies owned. Default skins are
// implicitly owned and carry no record.
type OwnedSkin struct {
	ChildID    string    `json:"child_id"`
	SkinID     string    `json:"skin_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// ─── Gacha Results ──────────────────────────────────────────────────────────

// GachaOutcome is the typed result tag of a gacha roll. Expected
// preconditions are outcomes, not errors.
type GachaOutcome string

const (
	GachaOK               GachaOutcome = "ok"
	GachaNotEnoughTickets GachaOutcome = "not_enough_tickets"
	GachaDisabled         GachaOutcome = "gacha_disabled"
	GachaNotAvailable     GachaOutcome = "not_available"
)

// GachaResult is what a single roll produced. Skin is nil unless Outcome
// is GachaOK. DuplicateCoins is nonzero only for duplicate pulls.
type GachaResult struct {
	Outcome        GachaOutcome `json:"outcome"`
	Skin           *Skin        `json:"skin,omitempty"`
	IsNew          bool         `json:"is_new"`
	DuplicateCoins int64        `json:"duplicate_coins"`
	Pity           int          `json:"pity"`
}

// PurchaseOutcome is the typed result tag of a coin skin purchase.
type PurchaseOutcome string

const (
	PurchaseOK             PurchaseOutcome = "ok"
	PurchaseNotEnoughCoins PurchaseOutcome = "not_enough_coins"
	PurchaseLocked         PurchaseOutcome = "locked"
	PurchaseAlreadyOwned   PurchaseOutcome = "already_owned"
)
