package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brandvault/brandvault/internal/infrastructure/config"
	"github.com/brandvault/brandvault/internal/infrastructure/database"
	"github.com/brandvault/brandvault/internal/infrastructure/migration"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
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
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new SQL migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv(connect bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, logger.NewLogger(), nil
}

// gooseStrategy rejects drivers that are migrated with AutoMigrate.
func gooseStrategy(cfg *config.Config, log logger.Interface, op string) (*migration.GooseStrategy, error) {
	manager := migration.NewManager(cfg.Database.Driver, log)
	goose, ok := manager.GetStrategy().(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("%s is not supported for driver %q", op, cfg.Database.Driver)
	}
	return goose, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)

	if err := migration.NewManager(cfg.Database.Driver, log).Migrate(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	goose, err := gooseStrategy(cfg, log, "down migration")
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)
	if err := goose.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	goose, err := gooseStrategy(cfg, log, "status check")
	if err != nil {
		return err
	}

	version, err := goose.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := goose.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	scriptsPath, err := filepath.Abs(scriptsDir)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	strategy, ok := migration.NewGooseStrategy(scriptsPath, log).(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("create is only supported with goose strategy")
	}
	if err := strategy.Create(name); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, scriptsPath)
	return nil
}
