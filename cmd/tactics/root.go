package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tactics",
		Short: "Convert character drafts into tactical units",
		Long: `tactics turns character-builder drafts into battle-ready tactical units
and their combat cards, for single characters or whole teams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync() // nolint:errcheck // stderr sync fails on some terminals
		},
	}
	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to configuration file")
	root.PersistentFlags().String("log-level", "", "log level override: debug, info, warn, error")
	_ = a.v.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level")) // nolint:errcheck // flag is defined above

	root.AddCommand(
		newValidateCmd(a),
		newConvertCmd(a),
		newTeamCmd(a),
		newCardsCmd(a),
		newConditionsCmd(a),
		newRosterCmd(a),
	)
	return root
}
