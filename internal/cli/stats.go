package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/daemon"
	"github.com/trainquest/trainquest/internal/domain"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <child>",
	Short: "Show a child's progression dashboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	sum, err := d.Tracker.Summary(child.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s — Level %d\n", sum.Child.Name, sum.Child.Level)
	fmt.Printf("  XP    %s %d/%d\n",
		progressBar(sum.LevelInfo.Progress, 20), sum.LevelInfo.XPIntoLevel, sum.LevelInfo.XPForNext)
	fmt.Printf("  Coins %d   Streak %d🔥 (best %d)   Minutes %d\n",
		sum.Child.Coins, sum.Streak.Current, sum.Streak.Best, sum.Child.TotalMinutes)

	for _, cat := range domain.Categories() {
		info := sum.CatLevels[cat]
		w := sum.Wallets[cat]
		fmt.Printf("  %-8s lv %d %s   %d coins, %d tickets\n",
			cat, info.Level, progressBar(info.Progress, 10), w.Coins, w.Tickets)
	}

	if sum.CurrentNode != nil {
		n := sum.CurrentNode
		fmt.Printf("  Next: stage %d node %d (%s) — %d/%d sessions\n",
			n.StageIndex, n.NodeIndex, n.Type, n.Progress, n.RequiredSessions)
	} else {
		fmt.Println("  Quest map cleared! 🎉")
	}
	fmt.Printf("  Achievements unlocked: %d\n", sum.Achievements)
	fmt.Printf("  Buddy: %s (stage %d, mood %d)\n", sum.Buddy.SkinID, sum.Buddy.StageIndex, sum.Buddy.Mood)
	return nil
}
