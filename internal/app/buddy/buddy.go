// Package buddy implements the child's companion character: level/XP sync
// from the child's own progression, mood care actions, and skin evolution.
package buddy

import "github.com/trainquest/trainquest/internal/domain"

// Mood bounds and care action effects. Mood never decays on its own.
const (
	MaxMood      = 100
	TrainingMood = 2
	PetMood      = 5
	FeedMood     = 10
	FeedCost     = 5
	FeedXP       = 10
)

// New returns a fresh buddy wearing the given skin at stage 0.
func New(childID string, skin domain.Skin) domain.Buddy {
	return domain.Buddy{
		ChildID: childID,
		Level:   1,
		Mood:    MaxMood / 2,
		SkinID:  skin.ID,
	}
}

// SyncFromChild mirrors the child's level and XP onto the buddy, bumps mood
// for the training action, and re-checks evolution.
func SyncFromChild(b domain.Buddy, child domain.Child, skin domain.Skin) domain.Buddy {
	b.Level = child.Level
	b.XP = child.XP
	b.Mood = raiseMood(b.Mood, TrainingMood)
	return evolve(b, skin)
}

// Pet raises mood. Free, always available.
func Pet(b domain.Buddy) domain.Buddy {
	b.Mood = raiseMood(b.Mood, PetMood)
	return b
}

// Feed raises mood more and grants a little buddy XP. The caller charges
// the coin cost before applying.
func Feed(b domain.Buddy) domain.Buddy {
	b.Mood = raiseMood(b.Mood, FeedMood)
	b.XP += FeedXP
	return b
}

// AddXP grants buddy XP directly (treasure chest buddy_xp rewards).
func AddXP(b domain.Buddy, amount int64) domain.Buddy {
	if amount > 0 {
		b.XP += amount
	}
	return b
}

// evolve advances the skin stage when the buddy's level clears the line's
// per-stage threshold. The stage index never decreases.
func evolve(b domain.Buddy, skin domain.Skin) domain.Buddy {
	if skin.EvolveAtLevel <= 0 || skin.MaxStages <= 1 {
		return b
	}
	stage := b.Level / skin.EvolveAtLevel
	if stage > skin.MaxStages-1 {
		stage = skin.MaxStages - 1
	}
	if stage > b.StageIndex {
		b.StageIndex = stage
	}
	return b
}

func raiseMood(mood, delta int) int {
	mood += delta
	if mood > MaxMood {
		return MaxMood
	}
	return mood
}
