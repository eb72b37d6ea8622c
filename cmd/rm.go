package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/controller"
	"github.com/taskdeck/taskdeck/internal/task"
)

func newRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task. By default a confirmation prompt is shown; use --force
to skip it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			var confirm controller.ConfirmFunc
			if !force {
				confirm = promptConfirm
			}

			ctrl, err := newController(cmd, confirm)
			if err != nil {
				return err
			}
			ctx := context.Background()

			ctrl.Activate(ctx)
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}

			found := false
			for _, t := range ctrl.Tasks() {
				if t.ID == id {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("task %d not found", id)
			}

			before := len(ctrl.Tasks())
			ctrl.Delete(ctx, id)
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}
			if len(ctrl.Tasks()) == before {
				// Confirmation declined
				return nil
			}

			fmt.Printf("Task %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete without confirmation")
	return cmd
}

func promptConfirm(t task.Task) bool {
	fmt.Fprintf(os.Stderr, "Delete task %d (%s)? [y/N] ", t.ID, t.Title)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
