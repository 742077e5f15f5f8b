package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/AI2HU/sitekit/internal/config"
	"github.com/AI2HU/sitekit/internal/db"
	"github.com/AI2HU/sitekit/internal/db/sqlite"
	"github.com/AI2HU/sitekit/internal/logger"
	"github.com/AI2HU/sitekit/internal/models"
)

// ForceHTTPSEnv is the environment flag that forces https URLs
const ForceHTTPSEnv = "FORCE_HTTPS"

// AppProvider configures presentation defaults: bootstrap pagination markup
// and, when FORCE_HTTPS is set, https for every generated URL.
type AppProvider struct {
	lookup config.LookupFunc
}

// NewAppProvider creates the provider. A nil lookup reads the process environment.
func NewAppProvider(lookup config.LookupFunc) *AppProvider {
	if lookup == nil {
		lookup = config.OSLookup
	}
	return &AppProvider{lookup: lookup}
}

func (p *AppProvider) Name() string { return "app" }

// Register selects the bootstrap pagination theme
func (p *AppProvider) Register(c *Container) {
	c.Settings().UseBootstrap()
}

// Boot forces the https scheme when FORCE_HTTPS is truthy; otherwise scheme
// inference is left to the request. It never fails.
func (p *AppProvider) Boot(ctx context.Context, c *Container) error {
	if config.EnvBool(p.lookup, ForceHTTPSEnv, false) {
		c.Settings().ForceScheme("https")
		logger.Debug("Forcing https scheme for generated URLs")
	}
	return nil
}

// LoggingProvider initializes the global logger before any other provider boots
type LoggingProvider struct {
	cfg    config.LogConfig
	output io.Writer
}

// NewLoggingProvider creates the provider; a nil output logs to stdout
func NewLoggingProvider(cfg config.LogConfig, output io.Writer) *LoggingProvider {
	return &LoggingProvider{cfg: cfg, output: output}
}

func (p *LoggingProvider) Name() string { return "logging" }

func (p *LoggingProvider) Register(c *Container) {
	logger.InitWithFormat(logger.ParseLogLevel(p.cfg.Level), logger.ParseFormat(p.cfg.Format), p.output)
}

func (p *LoggingProvider) Boot(ctx context.Context, c *Container) error { return nil }

// DatabaseProvider binds the post store and connects it at boot
type DatabaseProvider struct {
	cfg   config.DatabaseConfig
	store db.PostStore
	err   error
}

// NewDatabaseProvider creates the provider for cfg
func NewDatabaseProvider(cfg config.DatabaseConfig) *DatabaseProvider {
	return &DatabaseProvider{cfg: cfg}
}

func (p *DatabaseProvider) Name() string { return "database" }

// Register creates the store without connecting it
func (p *DatabaseProvider) Register(c *Container) {
	dbConfig := &models.Config{
		Provider: p.cfg.Provider,
		URI:      p.cfg.URI,
		Options:  p.cfg.Options,
	}

	switch dbConfig.Provider {
	case "sqlite", "":
		store, err := sqlite.New(dbConfig)
		if err != nil {
			p.err = fmt.Errorf("failed to create database: %w", err)
			return
		}
		p.store = store
		c.Bind(ServicePostStore, db.PostStore(store))
	default:
		p.err = fmt.Errorf("unsupported database provider: %s", dbConfig.Provider)
	}
}

// Boot connects and migrates the store
func (p *DatabaseProvider) Boot(ctx context.Context, c *Container) error {
	if p.err != nil {
		return p.err
	}
	if err := p.store.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database ready (%s)", p.cfg.URI)
	return nil
}

// Shutdown disconnects the store
func (p *DatabaseProvider) Shutdown(ctx context.Context, c *Container) error {
	if p.store == nil {
		return nil
	}
	return p.store.Disconnect(ctx)
}

// ConfigProvider binds the loaded configuration
type ConfigProvider struct {
	cfg *config.Config
}

// NewConfigProvider creates the provider for cfg
func NewConfigProvider(cfg *config.Config) *ConfigProvider {
	return &ConfigProvider{cfg: cfg}
}

func (p *ConfigProvider) Name() string { return "config" }

func (p *ConfigProvider) Register(c *Container) {
	c.Bind(ServiceConfig, p.cfg)
}

func (p *ConfigProvider) Boot(ctx context.Context, c *Container) error { return nil }

// DefaultSequence returns the application's providers in startup order
func DefaultSequence(cfg *config.Config, lookup config.LookupFunc, logOutput io.Writer) *Sequence {
	return NewSequence(
		NewLoggingProvider(cfg.Log, logOutput),
		NewConfigProvider(cfg),
		NewAppProvider(lookup),
		NewDatabaseProvider(cfg.Database),
	)
}
