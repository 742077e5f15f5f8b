package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AI2HU/sitekit/internal/api"
	"github.com/AI2HU/sitekit/internal/urlgen"
)

var (
	servePort  string
	serveHost  string
	corsOrigin string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Run the startup sequence, then serve the site and the JSON API:
- HTML pages (/home, /posts with themed pagination links)
- Posts (List, Read, Create)
- Settings, URL generation and health endpoints`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to run the server on (overrides config file)")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "", "Host to bind the server to (overrides config file)")
	serveCmd.Flags().StringVarP(&corsOrigin, "cors-origin", "c", "", "CORS origin to allow (overrides config file, use '*' for all origins)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if corsOrigin != "" {
		cfg.Server.CORSOrigin = corsOrigin
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Shutdown(context.Background())

	store, err := postStore(app)
	if err != nil {
		return err
	}

	server, err := api.NewServer(store, app.Settings, api.Options{
		CORSOrigin:   cfg.Server.CORSOrigin,
		PerPage:      cfg.Pagination.PerPage,
		OnEachSide:   cfg.Pagination.OnEachSide,
		RateLimit:    cfg.Server.RateLimit,
		RateBurst:    cfg.Server.RateBurst,
		RootURL:      cfg.Server.AppURL,
		TrustProxies: cfg.Server.TrustProxies,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	urls := urlgen.New(app.Settings, urlgen.Options{RootURL: cfg.Server.AppURL})
	scheme, forced := app.Settings.ForcedScheme()
	if !forced {
		scheme = "inferred from request"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, FormatHeader("🚀 Starting Sitekit Server"))
	fmt.Fprintln(out, "===========================")
	fmt.Fprintln(out, FormatLabelValue("Listen:", fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)))
	fmt.Fprintln(out, FormatLabelValue("URL:", urls.To(nil, "/home", nil)))
	fmt.Fprintln(out, FormatLabelValue("Pagination theme:", string(app.Settings.PaginationTheme)))
	fmt.Fprintln(out, FormatLabelValue("URL scheme:", scheme))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "📚 Available Endpoints:")
	fmt.Fprintln(out, "    GET    /home                     - Home page")
	fmt.Fprintln(out, "    GET    /posts                    - Paginated posts page")
	fmt.Fprintln(out, "    GET    /api/v1/posts             - List posts")
	fmt.Fprintln(out, "    GET    /api/v1/posts/:id         - Get specific post")
	fmt.Fprintln(out, "    POST   /api/v1/posts             - Create new post")
	fmt.Fprintln(out, "    GET    /api/v1/url?path=/x       - Generate absolute URL")
	fmt.Fprintln(out, "    GET    /api/v1/settings          - Boot settings")
	fmt.Fprintln(out, "    GET    /api/v1/health            - Health check")
	fmt.Fprintln(out)
	fmt.Fprintln(out, FormatMeta("Press Ctrl+C to stop the server"))

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	return server.Run(ctx, address)
}
