package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
)

var errInvalidDrafts = errors.New("one or more drafts are invalid")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|dir>...",
		Short: "Check drafts for completeness",
		Long:  `Validate reports, for each draft, whether it is complete enough to convert. Exits non-zero if any draft is invalid.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			drafts, err := character.LoadDrafts(args...)
			if err != nil {
				return err
			}
			invalid := 0
			for _, d := range drafts {
				res := tactical.Validate(d)
				if res.Valid {
					fmt.Fprintf(a.out, "OK       %s  [%s]\n", displayName(d), attributeSummary(d))
					continue
				}
				invalid++
				line := fmt.Sprintf("INVALID  %s: %s", displayName(d), strings.Join(res.Errors, "; "))
				if missing := character.MissingAttributes(d.Attributes); len(missing) > 0 {
					line += fmt.Sprintf(" (missing %s)", strings.Join(missing, ", "))
				}
				fmt.Fprintln(a.out, line)
			}
			a.logger.Debug("drafts validated", zap.Int("total", len(drafts)), zap.Int("invalid", invalid))
			if invalid > 0 {
				return errInvalidDrafts
			}
			return nil
		},
	}
}

// attributeSummary renders the normalized attributes with their short labels.
func attributeSummary(d *character.Draft) string {
	attrs := character.Normalize(d.Attributes)
	parts := make([]string, 0, len(character.AttributeNames))
	for _, name := range character.AttributeNames {
		parts = append(parts, fmt.Sprintf("%s %d", character.AttributeName(name), attrs.Get(name)))
	}
	return strings.Join(parts, " ")
}

func displayName(d *character.Draft) string {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = "<unnamed>"
	}
	if d.ID != "" {
		return fmt.Sprintf("%s (%s)", name, d.ID)
	}
	return name
}
