package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/killallgit/scout-api/internal/database"
	"github.com/killallgit/scout-api/internal/models"
	"github.com/killallgit/scout-api/pkg/config"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the schema of the sql storage backend.

Tables for profiles, athletes, videos, assessments and training plans are
created or extended with GORM AutoMigrate. Deployments on the postgrest
backend manage their schema through Supabase and do not use this command.

Available subcommands:
  up      - Create or update all tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update all tables",
	Long: `Create missing tables and add missing columns and indexes.

Existing data is left in place; columns are never dropped.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `Display each managed table and whether it exists in the configured database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateUpCmd.Flags().Bool("dry-run", false, "show what would be done without making changes")
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	db, err := openMigrationDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return migrateUp(cmd.OutOrStdout(), db, dryRun)
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	db, err := openMigrationDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return migrationStatus(cmd.OutOrStdout(), db)
}

func openMigrationDatabase(cfg *config.Config) (*database.DB, error) {
	if cfg.Storage.Backend != config.BackendSQL {
		return nil, fmt.Errorf("migrations apply to the %q storage backend only (configured: %q)", config.BackendSQL, cfg.Storage.Backend)
	}
	return openDatabase(cfg.Database)
}

func migrateUp(out io.Writer, db *database.DB, dryRun bool) error {
	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, m := range models.All() {
			name, err := tableName(db, m)
			if err != nil {
				return err
			}
			action := "create"
			if db.Migrator().HasTable(m) {
				action = "update"
			}
			fmt.Fprintf(out, "  %s %s\n", action, name)
		}
		return nil
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	fmt.Fprintf(out, "Applied schema for %d tables\n", len(models.All()))
	return nil
}

func migrationStatus(out io.Writer, db *database.DB) error {
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	pending := 0
	for _, m := range models.All() {
		name, err := tableName(db, m)
		if err != nil {
			return err
		}
		state := "present"
		if !db.Migrator().HasTable(m) {
			state = "missing"
			pending++
		}
		fmt.Fprintf(out, "  %-16s %s\n", name, state)
	}

	if pending > 0 {
		fmt.Fprintf(out, "\n%d table(s) missing, run 'scout-api migrate up'\n", pending)
	}
	return nil
}

func tableName(db *database.DB, model any) (string, error) {
	stmt := &gorm.Statement{DB: db.DB}
	if err := stmt.Parse(model); err != nil {
		return "", fmt.Errorf("failed to parse model: %w", err)
	}
	return stmt.Schema.Table, nil
}
