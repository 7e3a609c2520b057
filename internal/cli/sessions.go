package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/daemon"
)

func init() {
	sessionsCmd.AddCommand(sessionsNoteCmd)
	rootCmd.AddCommand(sessionsCmd)
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions <child>",
	Short: "List a child's sessions, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessions,
}

var sessionsNoteCmd = &cobra.Command{
	Use:   "note <session-id> <note>",
	Short: "Edit a session's note",
	Args:  cobra.ExactArgs(2),
	RunE:  runSessionsNote,
}

func runSessions(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}
	sessions, err := d.Tracker.Sessions(child.ID)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tACTIVITY\tMIN\tXP\tCOINS\tSTATUS\tID")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			s.DateKey, s.ActivityID, s.DurationMinutes, s.XPGained, s.CoinsGained, s.Status, s.ID)
	}
	return w.Flush()
}

func runSessionsNote(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Tracker.EditSessionNote(args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("Note updated.")
	return nil
}
