package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/tactics/internal/config"
	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/tactical"
	"github.com/cory-johannsen/tactics/internal/observability"
	"github.com/cory-johannsen/tactics/internal/pkg/idgen"
	"github.com/cory-johannsen/tactics/internal/storage/postgres"
)

const storeHealthTimeout = 5 * time.Second

// rosterStore is the subset of the roster repository the CLI needs.
type rosterStore interface {
	SaveTeam(ctx context.Context, res tactical.TeamResult) error
	LoadTeam(ctx context.Context, teamID string) (*tactical.TeamResult, error)
	ListTeams(ctx context.Context) ([]string, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

// app carries the state shared by every subcommand once the root command
// has loaded configuration.
type app struct {
	out        io.Writer
	v          *viper.Viper
	configPath string
	cfg        config.Config
	logger     *zap.Logger
	ids        idgen.Generator
	openStore  func(ctx context.Context, cfg config.DatabaseConfig) (rosterStore, func(), error)
}

func newApp(out io.Writer) *app {
	return &app{
		out:       out,
		v:         config.NewViper(),
		logger:    zap.NewNop(),
		ids:       idgen.NewUUID(""),
		openStore: openPostgresStore,
	}
}

// load reads the config file (if any), applies env and flag overrides and
// builds the logger.
func (a *app) load() error {
	if a.configPath != "" {
		a.v.SetConfigFile(a.configPath)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	cfg, err := config.LoadFromViper(a.v)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) converter() *tactical.Converter {
	return tactical.NewConverter(a.ids, a.logger)
}

// withDefaults returns copies of drafts with the configured default theme
// applied to drafts that carry none. The inputs are not modified.
func (a *app) withDefaults(drafts []*character.Draft) []*character.Draft {
	out := make([]*character.Draft, len(drafts))
	for i, d := range drafts {
		c := *d
		if c.Theme == "" {
			c.Theme = a.cfg.Conversion.DefaultTheme
		}
		out[i] = &c
	}
	return out
}

func (a *app) teamID(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return a.cfg.Conversion.DefaultTeam
}

func (a *app) write(format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q: must be json or yaml", format)
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "json", "output format: json or yaml")
}

func openPostgresStore(ctx context.Context, cfg config.DatabaseConfig) (rosterStore, func(), error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Health(ctx, storeHealthTimeout); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("roster database unhealthy: %w", err)
	}
	return postgres.NewRosterRepository(pool), pool.Close, nil
}
