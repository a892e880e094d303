package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRosterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect teams stored in the roster database",
	}

	var output string
	show := &cobra.Command{
		Use:   "show <team-id>",
		Short: "Print a stored team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(ctx context.Context, store rosterStore) error {
				res, err := store.LoadTeam(ctx, args[0])
				if err != nil {
					return fmt.Errorf("loading team %s: %w", args[0], err)
				}
				return a.write(output, res)
			})
		},
	}
	addOutputFlag(show, &output)

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored team ids, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd.Context(), func(ctx context.Context, store rosterStore) error {
				ids, err := store.ListTeams(ctx)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(a.out, id)
				}
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Remove a stored team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(ctx context.Context, store rosterStore) error {
				if err := store.DeleteTeam(ctx, args[0]); err != nil {
					return fmt.Errorf("deleting team %s: %w", args[0], err)
				}
				fmt.Fprintf(a.out, "deleted %s\n", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(show, list, del)
	return cmd
}
