package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/app/progression"
	"github.com/trainquest/trainquest/internal/daemon"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:     "achievements <child>",
	Aliases: []string{"badges"},
	Short:   "Show achievements",
	Args:    cobra.ExactArgs(1),
	RunE:    runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	unlocked, err := d.Tracker.Achievements(child.ID)
	if err != nil {
		return err
	}

	unlockedAt := make(map[string]string)
	for _, a := range unlocked {
		unlockedAt[a.AchievementID] = a.UnlockedAt.Format("2006-01-02")
	}

	for _, def := range progression.AchievementCatalog() {
		if date, ok := unlockedAt[def.ID]; ok {
			fmt.Printf("%s %s — %s (unlocked %s)\n", def.Icon, def.Name, def.Description, date)
		} else {
			fmt.Printf("🔒 %s — %s\n", def.Name, def.Description)
		}
	}
	fmt.Printf("\n%d of %d unlocked\n", len(unlocked), len(progression.AchievementCatalog()))
	return nil
}
