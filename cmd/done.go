package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between completed and pending",
		Args:  cobra.ExactArgs(1),
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

			ctrl.ToggleComplete(ctx, id)
			if msg := ctrl.Err(); msg != "" {
				return errors.New(msg)
			}

			for _, t := range ctrl.Tasks() {
				if t.ID == id {
					fmt.Printf("Task %d is now %s\n", id, t.Status.Effective())
					return nil
				}
			}
			fmt.Printf("Task %d toggled\n", id)
			return nil
		},
	}
	return cmd
}
