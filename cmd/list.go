package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

func newListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks from the task service. By default only pending tasks are
shown; use --filter to select another status or all tasks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := task.Filter(filter)
			if !f.Valid() {
				return fmt.Errorf("unknown filter %q (valid: Pending, Completed, Expired, All)", filter)
			}

			ctrl, err := newController(cmd, nil)
			if err != nil {
				return err
			}
			ctrl.SetFilter(f)
			ctrl.Activate(context.Background())
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}

			printTasks(ctrl.Visible())
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(task.FilterPending), "Status filter: Pending, Completed, Expired, or All")
	return cmd
}

func printTasks(tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDEADLINE\tTITLE\tDESCRIPTION")
	for _, t := range tasks {
		deadline := task.WireToEditable(t.Deadline)
		if deadline == "" {
			deadline = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Status.Effective(), deadline, t.Title, t.Description)
	}
	_ = w.Flush()
}
