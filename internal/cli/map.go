package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/daemon"
)

func init() {
	rootCmd.AddCommand(mapCmd)
}

var mapCmd = &cobra.Command{
	Use:   "map <child>",
	Short: "Show the quest map",
	Args:  cobra.ExactArgs(1),
	RunE:  runMap,
}

func runMap(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	nodes, err := d.Tracker.MapNodes(child.ID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STAGE\tNODE\tTYPE\tPROGRESS\tREWARD\tSTATUS")
	for _, n := range nodes {
		status := " "
		if n.Completed {
			status = "✓"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%d/%d\t%d XP, %d coins\t%s\n",
			n.StageIndex, n.NodeIndex, n.Type, n.Progress, n.RequiredSessions,
			n.RewardXP, n.RewardCoins, status)
	}
	return w.Flush()
}
