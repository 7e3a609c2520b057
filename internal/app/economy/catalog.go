package economy

import "github.com/trainquest/trainquest/internal/domain"

// ─── Activity Catalog ───────────────────────────────────────────────────────
// Static catalog; the activity's domain decides its economy category.

// Activities returns the full activity catalog.
func Activities() []domain.Activity {
	return []domain.Activity{
		{ID: "math_drills", Name: "Math Drills", Domain: "math"},
		{ID: "reading", Name: "Reading", Domain: "language"},
		{ID: "spelling", Name: "Spelling Practice", Domain: "language"},
		{ID: "piano", Name: "Piano Practice", Domain: "music"},
		{ID: "homework", Name: "Homework", Domain: "school"},
		{ID: "soccer", Name: "Soccer", Domain: "sports"},
		{ID: "swimming", Name: "Swimming", Domain: "sports"},
		{ID: "cycling", Name: "Cycling", Domain: "outdoor"},
		{ID: "stretching", Name: "Stretching", Domain: "fitness"},
	}
}

// ActivityByID looks up a catalog activity. Returns nil if unknown.
func ActivityByID(id string) *domain.Activity {
	for _, a := range Activities() {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// ─── Skin Catalog ───────────────────────────────────────────────────────────
// Buddy skin lines per category. Default skins are implicitly owned by
// every child; gacha skins are drawn by weight; purchase skins cost wallet
// coins. GachaWeight 0 falls back to the uniform weight at roll time.

// Skins returns the full skin catalog.
func Skins() []domain.Skin {
	return []domain.Skin{
		// Defaults — one starter line per category.
		{ID: "scholar_owl", Name: "Scholar Owl", Line: "owl", Category: domain.CategoryStudy,
			Rarity: domain.RarityCommon, MinLevel: 1, UnlockMethod: domain.UnlockDefault,
			EvolveAtLevel: 5, MaxStages: 3},
		{ID: "trail_pup", Name: "Trail Pup", Line: "pup", Category: domain.CategoryExercise,
			Rarity: domain.RarityCommon, MinLevel: 1, UnlockMethod: domain.UnlockDefault,
			EvolveAtLevel: 5, MaxStages: 3},

		// Study gacha pool.
		{ID: "inkling", Name: "Inkling", Line: "inkling", Category: domain.CategoryStudy,
			Rarity: domain.RarityCommon, MinLevel: 2, GachaWeight: 55, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 6, MaxStages: 3},
		{ID: "page_mouse", Name: "Page Mouse", Line: "mouse", Category: domain.CategoryStudy,
			Rarity: domain.RarityCommon, MinLevel: 2, GachaWeight: 45, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 6, MaxStages: 3},
		{ID: "sage_fox", Name: "Sage Fox", Line: "fox", Category: domain.CategoryStudy,
			Rarity: domain.RarityRare, MinLevel: 2, GachaWeight: 24, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 8, MaxStages: 3},
		{ID: "star_scribe", Name: "Star Scribe", Line: "scribe", Category: domain.CategoryStudy,
			Rarity: domain.RarityEpic, MinLevel: 3, GachaWeight: 10, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 10, MaxStages: 2},
		{ID: "comet_quill", Name: "Comet Quill", Line: "quill", Category: domain.CategoryStudy,
			Rarity: domain.RarityLegendary, MinLevel: 4, GachaWeight: 3, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 12, MaxStages: 2},

		// Exercise gacha pool.
		{ID: "pebble", Name: "Pebble", Line: "pebble", Category: domain.CategoryExercise,
			Rarity: domain.RarityCommon, MinLevel: 2, GachaWeight: 55, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 6, MaxStages: 3},
		{ID: "dash_hare", Name: "Dash Hare", Line: "hare", Category: domain.CategoryExercise,
			Rarity: domain.RarityCommon, MinLevel: 2, GachaWeight: 45, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 6, MaxStages: 3},
		{ID: "thunder_colt", Name: "Thunder Colt", Line: "colt", Category: domain.CategoryExercise,
			Rarity: domain.RarityRare, MinLevel: 2, GachaWeight: 24, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 8, MaxStages: 3},
		{ID: "tide_otter", Name: "Tide Otter", Line: "otter", Category: domain.CategoryExercise,
			Rarity: domain.RarityEpic, MinLevel: 3, GachaWeight: 10, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 10, MaxStages: 2},
		{ID: "blaze_lion", Name: "Blaze Lion", Line: "lion", Category: domain.CategoryExercise,
			Rarity: domain.RarityLegendary, MinLevel: 4, GachaWeight: 3, UnlockMethod: domain.UnlockGacha,
			EvolveAtLevel: 12, MaxStages: 2},

		// Purchase skins — coin shop, one per category.
		{ID: "moon_cat", Name: "Moon Cat", Line: "cat", Category: domain.CategoryStudy,
			Rarity: domain.RarityRare, MinLevel: 2, UnlockMethod: domain.UnlockPurchase, Price: 150,
			EvolveAtLevel: 8, MaxStages: 3},
		{ID: "cliff_goat", Name: "Cliff Goat", Line: "goat", Category: domain.CategoryExercise,
			Rarity: domain.RarityRare, MinLevel: 2, UnlockMethod: domain.UnlockPurchase, Price: 150,
			EvolveAtLevel: 8, MaxStages: 3},
	}
}

// SkinByID looks up a catalog skin. Returns nil if unknown.
func SkinByID(id string) *domain.Skin {
	for _, s := range Skins() {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

// DefaultSkin returns the implicit starter skin for a category.
func DefaultSkin(cat domain.Category) domain.Skin {
	for _, s := range Skins() {
		if s.Category == cat && s.UnlockMethod == domain.UnlockDefault {
			return s
		}
	}
	return domain.Skin{}
}
