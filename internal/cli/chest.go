package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/daemon"
	"github.com/trainquest/trainquest/internal/domain"
)

func init() {
	chestCmd.AddCommand(chestOpenCmd)
	rootCmd.AddCommand(chestCmd)
}

var chestCmd = &cobra.Command{
	Use:   "chest",
	Short: "Show the shared treasure chest",
	RunE:  runChestStatus,
}

var chestOpenCmd = &cobra.Command{
	Use:   "open <child>",
	Short: "Open the chest (rewards go to the opener)",
	Args:  cobra.ExactArgs(1),
	RunE:  runChestOpen,
}

func runChestStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	ts := d.Tracker.Treasure()
	fmt.Printf("Chest #%d (%s): %d/%d sessions\n",
		ts.State.ChestIndex+1, ts.Kind, ts.State.Progress, ts.Target)
	if ts.Openable {
		fmt.Println("The chest is full! Open it with 'trainquest chest open <child>'.")
	}
	return nil
}

func runChestOpen(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}

	res, err := d.Tracker.OpenTreasureChest(child.ID)
	if err != nil {
		return err
	}
	if res.Outcome != domain.ChestOpened {
		ts := d.Tracker.Treasure()
		fmt.Printf("Not yet — %d/%d sessions banked.\n", ts.State.Progress, ts.Target)
		return nil
	}

	fmt.Printf("💰 %s opened a %s chest!\n", child.Name, res.Opening.Kind)
	for _, r := range res.Opening.Rewards {
		switch r.Type {
		case domain.RewardCoins:
			fmt.Printf("  +%d coins\n", r.Amount)
		case domain.RewardTickets:
			fmt.Printf("  +%d %s ticket(s)\n", r.Amount, r.Category)
		case domain.RewardBuddyXP:
			fmt.Printf("  +%d buddy XP\n", r.Amount)
		}
	}
	return nil
}
