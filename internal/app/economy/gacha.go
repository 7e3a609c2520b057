package economy

import (
	"math/rand"

	"github.com/trainquest/trainquest/internal/domain"
)

// uniformWeight is the fallback draw weight for skins without one.
const uniformWeight = 10

// GachaConfig tunes the roller. Defaults match the shipped economy; the
// daemon config can override Enabled, PityThreshold, and DuplicateCoins.
type GachaConfig struct {
	Enabled        bool
	UnlockLevel    int
	PityThreshold  int
	DuplicateCoins int64
}

// DefaultGachaConfig returns the shipped gacha tuning.
func DefaultGachaConfig() GachaConfig {
	return GachaConfig{
		Enabled:        true,
		UnlockLevel:    GachaUnlockLevel,
		PityThreshold:  10,
		DuplicateCoins: 20,
	}
}

// EligiblePool filters the catalog to gacha skins for the category whose
// MinLevel is within reach of the current category level.
func EligiblePool(catalog []domain.Skin, cat domain.Category, categoryLevel int) []domain.Skin {
	var pool []domain.Skin
	for _, s := range catalog {
		if s.UnlockMethod != domain.UnlockGacha {
			continue
		}
		if s.Category != cat || s.MinLevel > categoryLevel {
			continue
		}
		pool = append(pool, s)
	}
	return pool
}

// RollGacha performs one draw against the wallet and pool. It returns the
// typed result and the updated wallet; on any non-ok outcome the wallet is
// returned unchanged.
//
// Pity: the counter increments with the roll; when it reaches the threshold
// the draw is forced from the rare-or-better subset and the counter resets.
// A natural rare-or-better draw also resets it. Across any unlucky run a
// guaranteed pull therefore lands by the PityThreshold-th roll.
func RollGacha(cfg GachaConfig, w domain.Wallet, categoryLevel int, pool []domain.Skin, owned map[string]bool, rng *rand.Rand) (domain.GachaResult, domain.Wallet) {
	if !cfg.Enabled {
		return domain.GachaResult{Outcome: domain.GachaDisabled, Pity: w.Pity}, w
	}
	if categoryLevel < cfg.UnlockLevel || len(pool) == 0 {
		return domain.GachaResult{Outcome: domain.GachaNotAvailable, Pity: w.Pity}, w
	}
	if w.Tickets <= 0 {
		return domain.GachaResult{Outcome: domain.GachaNotEnoughTickets, Pity: w.Pity}, w
	}

	w.Tickets--
	w.Pity++

	var drawn domain.Skin
	if w.Pity >= cfg.PityThreshold {
		// Guaranteed pull: rare-or-better, falling back to the full pool
		// when the eligible pool has no rares yet.
		rares := rareOrBetter(pool)
		if len(rares) == 0 {
			rares = pool
		}
		drawn = weightedDraw(rares, rng)
		w.Pity = 0
	} else {
		drawn = weightedDraw(pool, rng)
		if domain.RarityAtLeast(drawn.Rarity, domain.RarityRare) {
			w.Pity = 0
		}
	}

	result := domain.GachaResult{
		Outcome: domain.GachaOK,
		Skin:    &drawn,
		Pity:    w.Pity,
	}
	if owned[drawn.ID] {
		result.DuplicateCoins = cfg.DuplicateCoins
		w.Coins += cfg.DuplicateCoins
	} else {
		result.IsNew = true
	}
	return result, w
}

func rareOrBetter(pool []domain.Skin) []domain.Skin {
	var out []domain.Skin
	for _, s := range pool {
		if domain.RarityAtLeast(s.Rarity, domain.RarityRare) {
			out = append(out, s)
		}
	}
	return out
}

// weightedDraw picks one skin proportionally to GachaWeight.
func weightedDraw(pool []domain.Skin, rng *rand.Rand) domain.Skin {
	total := 0
	for _, s := range pool {
		total += drawWeight(s)
	}

	r := rng.Intn(total)
	for _, s := range pool {
		r -= drawWeight(s)
		if r < 0 {
			return s
		}
	}
	return pool[len(pool)-1] // Unreachable, keeps the compiler honest
}

func drawWeight(s domain.Skin) int {
	if s.GachaWeight > 0 {
		return s.GachaWeight
	}
	return uniformWeight
}
