package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/auth"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
)

func newMigrateCommand(rt *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back PostgreSQL migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt.cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate needs the %s driver, configured %q", config.DriverPostgres, rt.cfg.Database.Driver)
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, rt.cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			run := postgres.Migrate
			if len(args) == 1 && args[0] == "down" {
				run = postgres.MigrateDown
			}
			results, err := run(ctx, pool)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.Version, r.Source)
			}
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations to run")
			}
			return nil
		},
	}
	return cmd
}

func newReconcileCommand(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute collection counters that drifted from their words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage, err := rt.openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer storage.Close()

			repaired, err := storage.Collections.ReconcileAll(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "repaired %d collection(s)\n", repaired)
			return err
		},
	}
}

func newTokenCommand(rt *state) *cobra.Command {
	var (
		user string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseUser(user)
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = rt.cfg.Auth.AccessTokenTTL
			}
			token, err := auth.NewJWTManager(rt.cfg.Auth.JWTSecret, rt.cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id (UUID) to put in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime; defaults to auth.access_token_ttl")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
