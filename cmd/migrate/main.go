package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/asakaida/banken/internal/infrastructure/config"
	"github.com/asakaida/banken/internal/infrastructure/database"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationsDir = "internal/infrastructure/database/migrations/postgres"

var (
	envFlag string
	pg      *database.Postgres
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Schema migration tool for Banken",
	Long: `Schema migration tool for Banken.
Applies and rolls back the PostgreSQL schema for the user_roles,
role_permissions and service_roles tables via golang-migrate.`,
	PersistentPreRun: connectDatabase,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Run:   runUp,
}

var downCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default: one step)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runDown,
}

var gotoCmd = &cobra.Command{
	Use:   "goto <version>",
	Short: "Migrate up or down to the given version",
	Args:  cobra.ExactArgs(1),
	Run:   runGoto,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	Run:   runVersion,
}

var forceCmd = &cobra.Command{
	Use:   "force <version>",
	Short: "Overwrite the recorded version without running migrations",
	Long: `Overwrite the recorded schema version without running any migration.
Intended for repairing a dirty state left by a failed migration.`,
	Args: cobra.ExactArgs(1),
	Run:  runForce,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFlag, "env", "e", "dev", "Environment to use (dev, test, prod)")

	rootCmd.AddCommand(upCmd, downCmd, gotoCmd, versionCmd, forceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %v", err)
	}
}

// connectDatabase loads .env.{env} and opens the connection every
// subcommand works on.
func connectDatabase(cmd *cobra.Command, args []string) {
	log.Printf("Using environment: %s", envFlag)

	if err := config.InitConfig(envFlag); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pg, err = database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s@%s:%d/%s",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
}

// openMigrate builds a migrate instance over the shared connection and
// the migration files under the project root. It fatals on failure, like
// every subcommand it serves.
func openMigrate() *migrate.Migrate {
	root, err := findProjectRoot()
	if err != nil {
		log.Fatalf("Failed to locate project root: %v", err)
	}
	sourcePath := filepath.Join(root, migrationsDir)
	log.Printf("Using migrations at %s", sourcePath)

	driver, err := database.NewMigrateDriver(pg.DB)
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", sourcePath), "postgres", driver)
	if err != nil {
		log.Fatalf("Failed to create migrate instance: %v", err)
	}
	return m
}

func runUp(cmd *cobra.Command, args []string) {
	m := openMigrate()
	defer m.Close()

	switch err := m.Up(); err {
	case nil:
		log.Println("All pending migrations applied")
	case migrate.ErrNoChange:
		log.Println("Schema already up to date")
	default:
		log.Fatalf("Migration up failed: %v", err)
	}
}

func runDown(cmd *cobra.Command, args []string) {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			log.Fatalf("Invalid step count %q: must be a positive integer", args[0])
		}
		steps = n
	}

	m := openMigrate()
	defer m.Close()

	switch err := m.Steps(-steps); err {
	case nil:
		log.Printf("Rolled back %d migration(s)", steps)
	case migrate.ErrNoChange:
		log.Println("No migrations to roll back")
	default:
		log.Fatalf("Migration down failed: %v", err)
	}
}

func runGoto(cmd *cobra.Command, args []string) {
	target, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		log.Fatalf("Invalid version %q: must be a non-negative integer", args[0])
	}

	m := openMigrate()
	defer m.Close()

	switch err := m.Migrate(uint(target)); err {
	case nil:
		log.Printf("Migrated to version %d", target)
	case migrate.ErrNoChange:
		log.Printf("Already at version %d", target)
	default:
		log.Fatalf("Migration goto failed: %v", err)
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	m := openMigrate()
	defer m.Close()

	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		log.Println("No migrations applied yet")
		return
	}
	if err != nil {
		log.Fatalf("Failed to read version: %v", err)
	}

	if dirty {
		log.Printf("Current version: %d (dirty: the last migration did not finish)", version)
		return
	}
	log.Printf("Current version: %d", version)
}

func runForce(cmd *cobra.Command, args []string) {
	target, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("Invalid version %q: must be an integer", args[0])
	}

	m := openMigrate()
	defer m.Close()

	if err := m.Force(target); err != nil {
		log.Fatalf("Migration force failed: %v", err)
	}
	log.Printf("Recorded version forced to %d", target)
}

// findProjectRoot walks up from the working directory until it sees
// go.mod, so the tool can run from any subdirectory of the checkout.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		dir = parent
	}
}
