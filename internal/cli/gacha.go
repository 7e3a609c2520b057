package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/daemon"
	"github.com/trainquest/trainquest/internal/domain"
)

func init() {
	rootCmd.AddCommand(gachaCmd)
}

var gachaCmd = &cobra.Command{
	Use:   "gacha <child> <category>",
	Short: "Spend a ticket on a skin draw",
	Long: `Spend one gacha ticket from the child's category wallet on a random
buddy skin. Categories: study, exercise. Tickets are earned by training —
every third session in a category grants one.`,
	Args: cobra.ExactArgs(2),
	RunE: runGacha,
}

func runGacha(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}

	cat := domain.Category(args[1])
	if cat != domain.CategoryStudy && cat != domain.CategoryExercise {
		return fmt.Errorf("unknown category %q (study or exercise)", args[1])
	}

	res, err := d.Tracker.RollSkinGacha(child.ID, cat)
	if err != nil {
		return err
	}

	switch res.Outcome {
	case domain.GachaOK:
		if res.IsNew {
			fmt.Printf("🎉 NEW SKIN: %s (%s)!\n", res.Skin.Name, res.Skin.Rarity)
		} else {
			fmt.Printf("Duplicate %s — compensated with %d coins.\n", res.Skin.Name, res.DuplicateCoins)
		}
		fmt.Printf("Pity counter: %d\n", res.Pity)
	case domain.GachaNotEnoughTickets:
		fmt.Println("No tickets in that wallet. Train more to earn some!")
	case domain.GachaDisabled:
		fmt.Println("Gacha is disabled in the config.")
	case domain.GachaNotAvailable:
		fmt.Println("Gacha unlocks at category level 2. Keep training!")
	}
	return nil
}
