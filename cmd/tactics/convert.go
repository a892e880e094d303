package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/tactics/internal/game/cards"
	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		asCommander bool
		noCards     bool
		noEquipment bool
		team        string
		output      string
	)
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert one draft into a tactical unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := character.LoadDraftFile(args[0])
			if err != nil {
				return err
			}
			d = a.withDefaults([]*character.Draft{d})[0]

			opts := tactical.Options{
				AsCommander:      asCommander,
				GenerateCards:    a.cfg.Conversion.GenerateCards && !noCards,
				IncludeEquipment: a.cfg.Conversion.IncludeEquipment && !noEquipment,
				TeamID:           a.teamID(team),
			}
			return a.write(output, a.converter().Convert(d, opts))
		},
	}
	cmd.Flags().BoolVar(&asCommander, "commander", false, "convert as the team commander")
	cmd.Flags().BoolVar(&noCards, "no-cards", false, "skip combat card generation")
	cmd.Flags().BoolVar(&noEquipment, "no-equipment", false, "ignore equipped armor")
	cmd.Flags().StringVar(&team, "team", "", "team id (defaults to conversion.default_team)")
	addOutputFlag(cmd, &output)
	return cmd
}

func newCardsCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "cards <file>",
		Short: "Print the combat cards a draft would generate",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := character.LoadDraftFile(args[0])
			if err != nil {
				return err
			}
			d = a.withDefaults([]*character.Draft{d})[0]
			deck := cards.Generate(d, a.ids.Generate(), d.ResolvedTheme(), a.ids)
			if len(deck) == 0 {
				return fmt.Errorf("no cards generated for %s", displayName(d))
			}
			return a.write(output, deck)
		},
	}
	addOutputFlag(cmd, &output)
	return cmd
}
