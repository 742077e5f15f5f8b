package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI2HU/sitekit/internal/bootstrap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
	Long:  `Apply or inspect the embedded database migrations.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run all pending migrations",
	Long:  `Apply all pending database migrations.`,
	RunE:  runMigrateUp,
}

var migrateVersionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"status"},
	Short:   "Show current migration version",
	Long:    `Show the current database migration version.`,
	RunE:    runMigrateVersion,
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}

type migrationVersioner interface {
	MigrationVersion(ctx context.Context) (uint, bool, error)
}

// The database provider migrates while booting, so both commands boot and report
func runMigrateUp(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "🔄 Running database migrations...")

	if err := printMigrationVersion(cmd); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess("✅ Migrations completed successfully!"))
	return nil
}

func runMigrateVersion(cmd *cobra.Command, args []string) error {
	return printMigrationVersion(cmd)
}

func printMigrationVersion(cmd *cobra.Command) error {
	ctx := context.Background()
	app, err := bootApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Shutdown(ctx)

	store, err := postStore(app)
	if err != nil {
		return err
	}
	versioner, ok := store.(migrationVersioner)
	if !ok {
		return fmt.Errorf("database provider %s does not report migrations", bootstrap.ServicePostStore)
	}

	version, dirty, err := versioner.MigrationVersion(ctx)
	if err != nil {
		return err
	}

	state := "clean"
	if dirty {
		state = "dirty"
	}
	fmt.Fprintln(cmd.OutOrStdout(), FormatLabelValue("Current migration version:", fmt.Sprintf("%d (%s)", version, state)))
	return nil
}
