// Package cli implements wortctl, the administration tool for the Wortschatz
// backend.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/pkg/ctxutil"
)

// Env holds the dependencies the commands resolve at run time.
type Env struct {
	LoadConfig  func() (*config.Config, error)
	OpenStorage func(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*app.Storage, error)
}

// DefaultEnv loads configuration from file and environment and opens the
// configured storage backend.
func DefaultEnv() Env {
	return Env{LoadConfig: config.Load, OpenStorage: app.OpenStorage}
}

type state struct {
	env     Env
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the wortctl command tree.
func NewRootCommand(env Env) *cobra.Command {
	rt := &state{env: env}

	root := &cobra.Command{
		Use:           "wortctl",
		Short:         "Administration tool for the Wortschatz backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&rt.envFile, "env-file", ".env", "dotenv file loaded before the configuration")

	root.AddCommand(
		newMigrateCommand(rt),
		newReconcileCommand(rt),
		newTokenCommand(rt),
		newImportWordsCommand(rt),
		newExportCommand(rt),
		newImportCommand(rt),
		newStudyCommand(rt),
	)
	return root
}

func (rt *state) init(cmd *cobra.Command) error {
	if err := godotenv.Load(rt.envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env-file") {
			return fmt.Errorf("load %s: %w", rt.envFile, err)
		}
	}

	cfg, err := rt.env.LoadConfig()
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.logger = app.NewLogger(cfg.Log)
	return nil
}

func (rt *state) openStorage(ctx context.Context) (*app.Storage, error) {
	return rt.env.OpenStorage(ctx, rt.cfg.Database, rt.logger)
}

// userContext parses the --user flag value and attaches it to ctx as the
// acting user.
func userContext(ctx context.Context, raw string) (context.Context, error) {
	id, err := parseUser(raw)
	if err != nil {
		return nil, err
	}
	return ctxutil.WithUserID(ctx, id), nil
}

func parseUser(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: must be a UUID", raw)
	}
	return id, nil
}

func parseCollectionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid --collection %q: must be a UUID", raw)
	}
	return id, nil
}
