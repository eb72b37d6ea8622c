package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/task"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		deadline    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task with the given title. The deadline is given in local
time as 'YYYY-MM-DDTHH:MM'; omit it for a task without a deadline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := newController(cmd, nil)
			if err != nil {
				return err
			}

			ctrl.Create(context.Background(), task.Draft{
				Title:       args[0],
				Description: description,
				Deadline:    deadline,
			})
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}

			fmt.Printf("Task %q created\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Description for the task")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline in 'YYYY-MM-DDTHH:MM' local time")
	return cmd
}
