package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tactics/internal/game/condition"
)

func newConditionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "conditions",
		Short: "List the status conditions defined in the content directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			dir := filepath.Join(a.cfg.Conversion.ContentDir, "conditions")
			reg, err := condition.LoadDirectory(dir)
			if err != nil {
				return err
			}
			if missing := reg.Missing(condition.CardStatuses...); len(missing) > 0 {
				a.logger.Warn("card statuses without a definition",
					zap.String("dir", dir),
					zap.Strings("missing", missing),
				)
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tDURATION")
			for _, def := range reg.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.ID, def.Name, def.Category, def.DurationType)
			}
			return tw.Flush()
		},
	}
}
