package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/daemon"
	"github.com/trainquest/trainquest/internal/domain"
)

func init() {
	buddyCmd.AddCommand(buddyPetCmd)
	buddyCmd.AddCommand(buddyFeedCmd)
	buddyCmd.AddCommand(buddyDressCmd)
	rootCmd.AddCommand(buddyCmd)
}

var buddyCmd = &cobra.Command{
	Use:   "buddy <child>",
	Short: "Show the child's buddy",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuddyShow,
}

var buddyPetCmd = &cobra.Command{
	Use:   "pet <child>",
	Short: "Pet the buddy (free, raises mood)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuddyPet,
}

var buddyFeedCmd = &cobra.Command{
	Use:   "feed <child>",
	Short: "Feed the buddy (costs a few coins)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuddyFeed,
}

var buddyDressCmd = &cobra.Command{
	Use:   "dress <child> <skin-id>",
	Short: "Dress the buddy in an owned skin",
	Args:  cobra.ExactArgs(2),
	RunE:  runBuddyDress,
}

func runBuddyShow(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	b, err := d.Tracker.Buddy(child.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s's buddy: %s\n", child.Name, b.SkinID)
	fmt.Printf("  Level %d (XP %d), stage %d\n", b.Level, b.XP, b.StageIndex)
	fmt.Printf("  Mood %s %d/100\n", progressBar(float64(b.Mood)/100, 10), b.Mood)
	return nil
}

func runBuddyPet(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	res, err := d.Tracker.PetBuddy(child.ID)
	if err != nil {
		return err
	}

	fmt.Printf("🐾 Mood is now %d/100.\n", res.Buddy.Mood)
	return nil
}

func runBuddyFeed(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	res, err := d.Tracker.FeedBuddy(child.ID)
	if err != nil {
		return err
	}
	if res.Outcome == domain.CareNotEnoughCoins {
		fmt.Println("Not enough coins to buy a snack. Train to earn some!")
		return nil
	}

	fmt.Printf("🍎 Yum! Mood is now %d/100, buddy XP %d.\n", res.Buddy.Mood, res.Buddy.XP)
	return nil
}

func runBuddyDress(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	b, err := d.Tracker.SetBuddySkin(child.ID, args[1])
	if err != nil {
		return err
	}

	fmt.Printf("✨ Buddy is now wearing %s.\n", b.SkinID)
	return nil
}
