package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/daemon"
)

func init() {
	childCmd.AddCommand(childAddCmd)
	childCmd.AddCommand(childListCmd)
	rootCmd.AddCommand(childCmd)
}

var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Manage child profiles",
}

var childAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a child profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runChildAdd,
}

var childListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List child profiles",
	RunE:    runChildList,
}

func runChildAdd(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := d.Tracker.AddChild(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (level %d). The quest map awaits!\n", child.Name, child.Level)
	return nil
}

func runChildList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	children := d.Tracker.Children()
	if len(children) == 0 {
		fmt.Println("No children yet. Run 'trainquest child add <name>' to get started.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLEVEL\tXP\tCOINS\tSTREAK\tID")
	for _, c := range children {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d🔥\t%s\n",
			c.Name, c.Level, c.XP, c.Coins, c.CurrentStreak, c.ID)
	}
	return w.Flush()
}
