package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"clinic-portal/cmd/bootstrap"
	"clinic-portal/config"
	"clinic-portal/internal/infrastructure/migration"
	"clinic-portal/internal/repository"
	"clinic-portal/internal/seed"
	"clinic-portal/internal/service"
	"clinic-portal/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "clinic-portal",
		Short:         "Clinic portal API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("clinic-portal: %v", err)
	}
}

func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, bootstrap.NewLogger(cfg), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := bootstrap.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	return app.Run()
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	withMigrator := func(fn func(m *migration.Migrator, log *logrus.Logger) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			m, err := migration.NewMigrator(cfg.DB.URL(), log)
			if err != nil {
				return err
			}
			return errors.Join(fn(m, log), m.Close())
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: withMigrator(func(m *migration.Migrator, log *logrus.Logger) error {
			if err := m.Up(); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Info("Migrations applied")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		RunE: withMigrator(func(m *migration.Migrator, log *logrus.Logger) error {
			if err := m.Down(); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			log.Info("Migrations rolled back")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: withMigrator(func(m *migration.Migrator, log *logrus.Logger) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Printf("version %d (dirty: %t)\n", version, dirty)
			return nil
		}),
	})

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load reference data and a demo doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			app, err := bootstrap.Connect(cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()

			seeder := seed.NewSeeder(app.DB, log, repository.NewDoctorAvailabilityRepository())
			if err := seeder.Run(cmd.Context()); err != nil {
				return err
			}

			// Cached lists would hide the new rows until they expire.
			if err := service.NewCatalogCache(app.RedisClient, cfg.Cache.CatalogTTL).Invalidate(cmd.Context()); err != nil {
				log.Warnf("Failed to invalidate catalog cache: %+v", err)
			}

			log.WithField("email", seed.DemoDoctorEmail).Info("Seed complete")
			return nil
		},
	}
}

// tokenCmd issues an access token for an existing user, for local testing of
// the doctor endpoints.
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.IsProduction() {
				return errors.New("token issuing is disabled in production")
			}

			app, err := bootstrap.Connect(cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			user, err := repository.NewUserRepository().FindByEmail(app.DB.WithContext(ctx), strings.TrimSpace(email))
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("no user with email %q", email)
			}

			jwtService := jwt.NewJWTService(cfg.JWT)
			token, tokenID, err := jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
			if err != nil {
				return err
			}
			if err := service.NewTokenStore(app.RedisClient).Register(ctx, user.ID, tokenID, jwtService.AccessExpiry()); err != nil {
				return fmt.Errorf("register token: %w", err)
			}

			if !user.IsDoctor() {
				log.WithField("role_id", user.RoleID).Warn("User is not a doctor; doctor endpoints will answer 403")
			}
			fmt.Fprintln(os.Stdout, token)
			return nil
		},
	}
	cmd.Flags().String("email", seed.DemoDoctorEmail, "Email of the user to issue the token for")
	return cmd
}
