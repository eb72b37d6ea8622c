package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var (
		title         string
		description   string
		deadline      string
		clearDeadline bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Long: `Edit fields of an existing task. Only the given flags change; other
fields keep their current values. Use --clear-deadline to remove the
deadline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ctrl, err := newController(cmd, nil)
			if err != nil {
				return err
			}
			ctx := context.Background()

			ctrl.Activate(ctx)
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}

			// BeginEdit loads the current values; flags overwrite them.
			ctrl.BeginEdit(id)
			if _, ok := ctrl.Editing(); !ok {
				return fmt.Errorf("task %d not found", id)
			}

			form := ctrl.Form()
			if cmd.Flags().Changed("title") {
				form.Title = title
			}
			if cmd.Flags().Changed("description") {
				form.Description = description
			}
			if cmd.Flags().Changed("deadline") {
				form.Deadline = deadline
			}
			if clearDeadline {
				form.Deadline = ""
			}

			ctrl.Update(ctx, id, form)
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}

			fmt.Printf("Task %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title for the task")
	cmd.Flags().StringVar(&description, "description", "", "New description for the task")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New deadline in 'YYYY-MM-DDTHH:MM' local time")
	cmd.Flags().BoolVar(&clearDeadline, "clear-deadline", false, "Remove the task's deadline")
	return cmd
}
