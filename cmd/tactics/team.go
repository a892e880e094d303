package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tactics/internal/game/character"
)

func newTeamCmd(a *app) *cobra.Command {
	var (
		commanderID string
		team        string
		save        bool
		output      string
	)
	cmd := &cobra.Command{
		Use:   "team <file|dir>...",
		Short: "Convert a set of drafts into a team",
		Long: `Team converts every draft found in the given files and directories.
The draft whose id matches --commander-id leads the team. With --save the
result is stored in the roster database.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := character.LoadDrafts(args...)
			if err != nil {
				return err
			}
			res := a.converter().ConvertTeam(a.withDefaults(drafts), commanderID, a.teamID(team))

			if save {
				if err := a.withStore(cmd.Context(), func(ctx context.Context, store rosterStore) error {
					return store.SaveTeam(ctx, res)
				}); err != nil {
					return fmt.Errorf("saving team %s: %w", res.TeamID, err)
				}
				a.logger.Info("team saved",
					zap.String("team", res.TeamID),
					zap.Int("units", len(res.Units)),
					zap.Int("cards", len(res.Cards)),
				)
			}
			return a.write(output, res)
		},
	}
	cmd.Flags().StringVar(&commanderID, "commander-id", "", "draft id of the team commander")
	cmd.Flags().StringVar(&team, "team", "", "team id (defaults to conversion.default_team)")
	cmd.Flags().BoolVar(&save, "save", false, "store the converted team in the roster database")
	addOutputFlag(cmd, &output)
	return cmd
}

// withStore opens the roster store, runs fn and closes the store.
func (a *app) withStore(ctx context.Context, fn func(context.Context, rosterStore) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, closeFn, err := a.openStore(ctx, a.cfg.Database)
	if err != nil {
		return fmt.Errorf("opening roster store: %w", err)
	}
	defer closeFn()
	return fn(ctx, store)
}
