package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AI2HU/sitekit/internal/bootstrap"
	"github.com/AI2HU/sitekit/internal/config"
	"github.com/AI2HU/sitekit/internal/db"
	"github.com/AI2HU/sitekit/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config

	// lookupEnv is the environment seen by config overrides and providers
	lookupEnv config.LookupFunc = config.OSLookup
	// logOutput receives log lines from the logging provider
	logOutput io.Writer = os.Stderr
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sitekit",
	Short: "Small web site with boot-time presentation settings",
	Long: `Sitekit serves a paginated site and JSON API. At startup it selects the
pagination markup theme and, when FORCE_HTTPS is set, forces every generated
absolute URL to use https (useful behind TLS-terminating proxies).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip init for the init command itself
		if cmd.Name() == "init" {
			return nil
		}

		var err error
		cfg, err = loadConfig()
		return err
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sitekit/config.yaml)")

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(urlCmd)
}

// loadConfig reads the config file, falling back to defaults, then applies env overrides
func loadConfig() (*config.Config, error) {
	path := config.ResolvePath(cfgFile, lookupEnv)

	var loaded *config.Config
	if config.Exists(path) {
		var err error
		loaded, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		logger.Warning("Configuration file not found at %s, using defaults. Run 'sitekit init' to create one", path)
		loaded = config.DefaultConfig()
	}

	loaded.ApplyEnv(lookupEnv)
	return loaded, nil
}

// bootApplication runs the startup sequence for the loaded config
func bootApplication(ctx context.Context) (*bootstrap.Application, error) {
	return bootstrap.DefaultSequence(cfg, lookupEnv, logOutput).Run(ctx)
}

// postStore resolves the store bound by the database provider
func postStore(app *bootstrap.Application) (db.PostStore, error) {
	return bootstrap.Resolve[db.PostStore](app.Container, bootstrap.ServicePostStore)
}
