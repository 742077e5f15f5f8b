package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AI2HU/sitekit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize sitekit configuration",
	Long:  `Interactive wizard to set up sitekit configuration including server, database and pagination.`,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "🚀 Welcome to Sitekit Setup")
	fmt.Fprintln(out, "===========================")
	fmt.Fprintln(out)

	// Check if config already exists
	configPath := config.ResolvePath(cfgFile, lookupEnv)
	if config.Exists(configPath) {
		fmt.Fprintf(out, "Configuration file already exists at: %s\n", configPath)
		confirmed, err := promptYesNo(reader, "Do you want to overwrite it? (y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	fmt.Fprintln(out, "\n🌐 Server Configuration")
	fmt.Fprintln(out, "-----------------------")

	port, err := promptWithRetry(reader, fmt.Sprintf("Port [%s]: ", cfg.Server.Port), func(input string) (string, error) {
		if input == "" {
			return cfg.Server.Port, nil
		}
		return validatePort(input)
	})
	if err != nil {
		return err
	}
	cfg.Server.Port = port

	appURL, err := promptWithRetry(reader, fmt.Sprintf("App URL [%s]: ", cfg.Server.AppURL), func(input string) (string, error) {
		if input == "" {
			return cfg.Server.AppURL, nil
		}
		return validateAppURL(input)
	})
	if err != nil {
		return err
	}
	cfg.Server.AppURL = appURL

	trust, err := promptYesNo(reader, "Running behind a TLS-terminating proxy? (y/N): ")
	if err != nil {
		return err
	}
	cfg.Server.TrustProxies = trust

	fmt.Fprintln(out, "\n📊 Database Configuration")
	fmt.Fprintln(out, "--------------------------")

	uri, err := promptOptional(reader, fmt.Sprintf("SQLite file [%s]: ", cfg.Database.URI), cfg.Database.URI)
	if err != nil {
		return err
	}
	cfg.Database.URI = uri

	fmt.Fprintln(out, "\n📄 Pagination")
	fmt.Fprintln(out, "-------------")

	perPage, err := promptWithRetry(reader, fmt.Sprintf("Posts per page [%d]: ", cfg.Pagination.PerPage), func(input string) (string, error) {
		if input == "" {
			return strconv.Itoa(cfg.Pagination.PerPage), nil
		}
		n, err := validatePerPage(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
	if err != nil {
		return err
	}
	cfg.Pagination.PerPage, _ = strconv.Atoi(perPage)

	// Save configuration
	fmt.Fprintln(out, "\n💾 Saving configuration...")
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out, FormatSuccess("✅ Configuration saved to: "+configPath))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "ℹ️  Set FORCE_HTTPS=true in the environment to make every generated URL use https.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Add sample data: sitekit seed")
	fmt.Fprintln(out, "  2. Start the server: sitekit serve")

	return nil
}
