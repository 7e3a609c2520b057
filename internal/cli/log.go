package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trainquest/trainquest/internal/app/tracker"
	"github.com/trainquest/trainquest/internal/daemon"
)

func init() {
	logCmd.Flags().IntVarP(&logMinutes, "minutes", "m", 0, "Session duration in minutes")
	logCmd.Flags().IntVarP(&logEffort, "effort", "e", 2, "Effort level 1-3")
	logCmd.Flags().StringVarP(&logNote, "note", "n", "", "Optional note")
	logCmd.Flags().StringSliceVarP(&logTags, "tag", "t", nil, "Optional tags")
	logCmd.Flags().BoolVar(&logPlan, "plan", false, "Plan the session instead of completing it")
	rootCmd.AddCommand(logCmd)

	completeCmd.Flags().IntVarP(&logMinutes, "minutes", "m", 0, "Session duration in minutes")
	completeCmd.Flags().IntVarP(&logEffort, "effort", "e", 2, "Effort level 1-3")
	rootCmd.AddCommand(completeCmd)
}

var (
	logMinutes int
	logEffort  int
	logNote    string
	logTags    []string
	logPlan    bool
)

var logCmd = &cobra.Command{
	Use:   "log <child> <activity>",
	Short: "Log a training session",
	Long: `Log a training session for a child. The session earns XP and coins,
advances the quest map, feeds the streak, and may unlock achievements.

With --plan the session is only scheduled; complete it later with
'trainquest complete <session-id>'.`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

var completeCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Complete a planned session",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runLog(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	child, err := resolveChild(d.Tracker, args[0])
	if err != nil {
		return err
	}

	if !logPlan && logMinutes <= 0 {
		return fmt.Errorf("--minutes is required (how long was the session?)")
	}

	res, err := d.Tracker.LogTrainingSession(tracker.LogInput{
		ChildID:         child.ID,
		ActivityID:      args[1],
		DurationMinutes: logMinutes,
		EffortLevel:     logEffort,
		Note:            logNote,
		Tags:            logTags,
		Planned:         logPlan,
	})
	if err != nil {
		return err
	}

	if logPlan {
		fmt.Printf("Planned %s for %s. Session ID: %s\n", args[1], child.Name, res.Session.ID)
		return nil
	}

	printSessionResult(child.Name, res)
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if logMinutes <= 0 {
		return fmt.Errorf("--minutes is required (how long was the session?)")
	}

	res, err := d.Tracker.CompletePlannedSession(args[0], logMinutes, logEffort)
	if err != nil {
		return err
	}

	child, err := d.Tracker.Child(res.Session.ChildID)
	if err != nil {
		return err
	}
	printSessionResult(child.Name, res)
	return nil
}
