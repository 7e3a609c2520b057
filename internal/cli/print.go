package cli

import (
	"fmt"

	"github.com/trainquest/trainquest/internal/domain"
)

// printSessionResult shows everything one logged session earned.
func printSessionResult(childName string, res *domain.SessionResult) {
	fmt.Printf("%s earned %d XP and %d coins!\n",
		childName, res.Session.XPGained, res.Session.CoinsGained)

	for _, n := range res.CompletedNodes {
		label := "node"
		switch n.Type {
		case domain.NodeBoss:
			label = "BOSS"
		case domain.NodeTreasure:
			label = "treasure node"
		}
		fmt.Printf("  🗺️  Cleared %s %d-%d: +%d XP, +%d coins\n",
			label, n.StageIndex, n.NodeIndex, n.RewardXP, n.RewardCoins)
	}
	if res.LevelUps > 0 {
		fmt.Printf("  ⬆️  LEVEL UP ×%d\n", res.LevelUps)
	}
	for _, a := range res.UnlockedAchievements {
		fmt.Printf("  %s Achievement unlocked: %s — %s\n", a.Icon, a.Name, a.Description)
	}
}
