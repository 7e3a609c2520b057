package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/app/economy"
	"github.com/trainquest/trainquest/internal/daemon"
	"github.com/trainquest/trainquest/internal/domain"
)

func init() {
	skinsCmd.AddCommand(skinsBuyCmd)
	rootCmd.AddCommand(skinsCmd)
}

var skinsCmd = &cobra.Command{
	Use:   "skins <child>",
	Short: "Show the skin collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkins,
}

var skinsBuyCmd = &cobra.Command{
	Use:   "buy <child> <skin-id>",
	Short: "Buy a shop skin with wallet coins",
	Args:  cobra.ExactArgs(2),
	RunE:  runSkinsBuy,
}

func runSkins(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	owned, err := d.Tracker.OwnedSkins(child.ID)
	if err != nil {
		return err
	}

	ownedSet := make(map[string]bool, len(owned))
	for _, s := range owned {
		ownedSet[s.ID] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SKIN\tCATEGORY\tRARITY\tHOW\tOWNED")
	for _, s := range economy.Skins() {
		how := string(s.UnlockMethod)
		if s.UnlockMethod == domain.UnlockPurchase {
			how = fmt.Sprintf("shop (%d coins)", s.Price)
		}
		mark := " "
		if ownedSet[s.ID] {
			mark = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.Category, s.Rarity, how, mark)
	}
	return w.Flush()
}

func runSkinsBuy(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}

	res, err := d.Tracker.PurchaseSkin(child.ID, args[1])
	if err != nil {
		return err
	}

	switch res.Outcome {
	case domain.PurchaseOK:
		fmt.Printf("🛍️  Bought %s for %d coins!\n", res.Skin.Name, res.Skin.Price)
	case domain.PurchaseNotEnoughCoins:
		fmt.Printf("Not enough %s coins (need %d).\n", res.Skin.Category, res.Skin.Price)
	case domain.PurchaseLocked:
		fmt.Println("That skin is not purchasable yet.")
	case domain.PurchaseAlreadyOwned:
		fmt.Println("Already owned.")
	}
	return nil
}
