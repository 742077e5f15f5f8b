package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI2HU/sitekit/internal/urlgen"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective boot settings",
	Long:  `Run the startup sequence without serving and print the selected pagination theme and URL scheme.`,
	RunE:  runSettings,
}

var urlCmd = &cobra.Command{
	Use:   "url <path>",
	Short: "Print the absolute URL generated for a path",
	Long: `Generate an absolute URL for path using the boot settings and the configured app URL.
With FORCE_HTTPS set the URL always uses https.`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func runSettings(cmd *cobra.Command, args []string) error {
	app, err := bootApplication(context.Background())
	if err != nil {
		return err
	}
	defer app.Shutdown(context.Background())

	scheme, forced := app.Settings.ForcedScheme()
	if !forced {
		scheme = "(inferred from request)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, FormatHeader("⚙️  Boot Settings"))
	fmt.Fprintln(out, FormatLabelValue("Pagination theme:", string(app.Settings.PaginationTheme)))
	fmt.Fprintln(out, FormatLabelValue("Forced URL scheme:", scheme))
	fmt.Fprintln(out, FormatLabelValue("App URL:", cfg.Server.AppURL))
	return nil
}

func runURL(cmd *cobra.Command, args []string) error {
	app, err := bootApplication(context.Background())
	if err != nil {
		return err
	}
	defer app.Shutdown(context.Background())

	urls := urlgen.New(app.Settings, urlgen.Options{RootURL: cfg.Server.AppURL})
	fmt.Fprintln(cmd.OutOrStdout(), urls.To(nil, args[0], nil))
	return nil
}
