package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiken-app/shiken/internal/infrastructure/config"
	"github.com/shiken-app/shiken/internal/infrastructure/database"
	"github.com/shiken-app/shiken/internal/infrastructure/migration"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back, and inspect embedded database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE:  runDown,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	if err := migration.Up(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("rolling back last migration", "environment", env)

	if err := migration.Down(database.Get()); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migration.Status(database.Get()); err != nil {
		log.Errorw("failed to get migration status", "error", err)
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	return nil
}
