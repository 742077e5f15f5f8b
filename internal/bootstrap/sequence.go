package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AI2HU/sitekit/internal/logger"
	"github.com/AI2HU/sitekit/internal/settings"
)

// ErrAlreadyBooted is returned when a sequence is run a second time
var ErrAlreadyBooted = errors.New("startup sequence already ran")

// Provider takes part in the two-phase startup.
// Register binds services and must not depend on other providers.
// Boot runs only after every provider has registered.
type Provider interface {
	Name() string
	Register(c *Container)
	Boot(ctx context.Context, c *Container) error
}

// Shutdowner is implemented by providers that hold resources
type Shutdowner interface {
	Shutdown(ctx context.Context, c *Container) error
}

// Application is the result of a completed startup
type Application struct {
	Container *Container
	Settings  settings.Settings

	providers []Provider
}

// Sequence runs providers in the order they were added
type Sequence struct {
	mu        sync.Mutex
	providers []Provider
	ran       bool
}

// NewSequence creates a sequence over providers
func NewSequence(providers ...Provider) *Sequence {
	return &Sequence{providers: providers}
}

// Add appends a provider. It has no effect once the sequence ran.
func (s *Sequence) Add(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ran {
		s.providers = append(s.providers, p)
	}
}

// Run registers every provider, then boots every provider, then freezes the settings.
// If a provider fails to boot, providers booted before it are shut down.
func (s *Sequence) Run(ctx context.Context) (*Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ran {
		return nil, ErrAlreadyBooted
	}
	s.ran = true

	c := NewContainer()

	for _, p := range s.providers {
		logger.Debug("Registering provider %s", p.Name())
		p.Register(c)
	}

	booted := make([]Provider, 0, len(s.providers))
	for _, p := range s.providers {
		if err := ctx.Err(); err != nil {
			shutdown(context.Background(), c, booted)
			return nil, fmt.Errorf("startup cancelled before booting %s: %w", p.Name(), err)
		}
		logger.Debug("Booting provider %s", p.Name())
		if err := p.Boot(ctx, c); err != nil {
			shutdown(context.Background(), c, booted)
			return nil, fmt.Errorf("failed to boot %s provider: %w", p.Name(), err)
		}
		booted = append(booted, p)
	}

	app := &Application{
		Container: c,
		Settings:  c.Settings().Build(),
		providers: booted,
	}

	scheme, forced := app.Settings.ForcedScheme()
	logger.WithFields(map[string]interface{}{
		"providers":        len(booted),
		"pagination_theme": app.Settings.PaginationTheme,
		"forced_scheme":    scheme,
		"scheme_forced":    forced,
	}).Info("Application booted")

	return app, nil
}

// Shutdown releases provider resources in reverse boot order
func (a *Application) Shutdown(ctx context.Context) error {
	return shutdown(ctx, a.Container, a.providers)
}

func shutdown(ctx context.Context, c *Container, providers []Provider) error {
	var errs []error
	for i := len(providers) - 1; i >= 0; i-- {
		sd, ok := providers[i].(Shutdowner)
		if !ok {
			continue
		}
		if err := sd.Shutdown(ctx, c); err != nil {
			logger.Error("Failed to shut down %s provider: %v", providers[i].Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", providers[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}
