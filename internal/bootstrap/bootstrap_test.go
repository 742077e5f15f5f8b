package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI2HU/sitekit/internal/config"
	"github.com/AI2HU/sitekit/internal/db"
	"github.com/AI2HU/sitekit/internal/logger"
	"github.com/AI2HU/sitekit/internal/settings"
	"github.com/AI2HU/sitekit/internal/urlgen"
)

func init() {
	logger.Init(logger.ERROR, &bytes.Buffer{})
}

// recordingProvider records the phase calls it receives into a shared log
type recordingProvider struct {
	name     string
	calls    *[]string
	bootErr  error
	shutdown bool
}

func (p *recordingProvider) Name() string { return p.name }

func (p *recordingProvider) Register(c *Container) {
	*p.calls = append(*p.calls, "register:"+p.name)
	c.Bind(p.name, p)
}

func (p *recordingProvider) Boot(ctx context.Context, c *Container) error {
	*p.calls = append(*p.calls, "boot:"+p.name)
	return p.bootErr
}

func (p *recordingProvider) Shutdown(ctx context.Context, c *Container) error {
	p.shutdown = true
	*p.calls = append(*p.calls, "shutdown:"+p.name)
	return nil
}

func TestSequenceRegistersAllBeforeBooting(t *testing.T) {
	var calls []string
	seq := NewSequence(
		&recordingProvider{name: "a", calls: &calls},
		&recordingProvider{name: "b", calls: &calls},
	)
	seq.Add(&recordingProvider{name: "c", calls: &calls})

	app, err := seq.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"register:a", "register:b", "register:c",
		"boot:a", "boot:b", "boot:c",
	}, calls)

	require.NoError(t, app.Shutdown(context.Background()))
	assert.Equal(t, []string{"shutdown:c", "shutdown:b", "shutdown:a"}, calls[6:])
}

func TestSequenceRunsOnce(t *testing.T) {
	seq := NewSequence()
	_, err := seq.Run(context.Background())
	require.NoError(t, err)

	_, err = seq.Run(context.Background())
	assert.True(t, errors.Is(err, ErrAlreadyBooted))
}

func TestSequenceBootFailureShutsDownBooted(t *testing.T) {
	var calls []string
	first := &recordingProvider{name: "first", calls: &calls}
	failing := &recordingProvider{name: "failing", calls: &calls, bootErr: errors.New("boom")}
	never := &recordingProvider{name: "never", calls: &calls}

	_, err := NewSequence(first, failing, never).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
	assert.True(t, first.shutdown)
	assert.False(t, failing.shutdown)
	assert.NotContains(t, calls, "boot:never")
}

func TestSequenceCancelledContext(t *testing.T) {
	var calls []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSequence(&recordingProvider{name: "a", calls: &calls}).Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, []string{"register:a"}, calls)
}

func TestContainerResolve(t *testing.T) {
	c := NewContainer()
	c.Bind("n", 42)

	n, err := Resolve[int](c, "n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Resolve[string](c, "n")
	assert.Error(t, err)
	_, err = Resolve[int](c, "missing")
	assert.Error(t, err)
}

func bootApp(t *testing.T, env map[string]string) settings.Settings {
	t.Helper()
	app, err := NewSequence(NewAppProvider(config.MapLookup(env))).Run(context.Background())
	require.NoError(t, err)
	return app.Settings
}

func TestAppProviderRegisterSelectsBootstrap(t *testing.T) {
	c := NewContainer()
	p := NewAppProvider(config.MapLookup(nil))

	p.Register(c)
	p.Register(c)

	assert.Equal(t, settings.ThemeBootstrap4, c.Settings().Build().PaginationTheme)
}

func TestAppProviderBootIsIdempotent(t *testing.T) {
	c := NewContainer()
	p := NewAppProvider(config.MapLookup(map[string]string{ForceHTTPSEnv: "true"}))

	require.NoError(t, p.Boot(context.Background(), c))
	once := c.Settings().Build()
	require.NoError(t, p.Boot(context.Background(), c))

	assert.Equal(t, once, c.Settings().Build())
}

func TestAppProviderForcedScheme(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		forced bool
	}{
		{name: "unset", env: map[string]string{}, forced: false},
		{name: "false", env: map[string]string{ForceHTTPSEnv: "false"}, forced: false},
		{name: "zero", env: map[string]string{ForceHTTPSEnv: "0"}, forced: false},
		{name: "malformed", env: map[string]string{ForceHTTPSEnv: "sure"}, forced: false},
		{name: "true", env: map[string]string{ForceHTTPSEnv: "true"}, forced: true},
		{name: "one", env: map[string]string{ForceHTTPSEnv: "1"}, forced: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := bootApp(t, tt.env)
			scheme, forced := s.ForcedScheme()
			assert.Equal(t, tt.forced, forced)
			if tt.forced {
				assert.Equal(t, "https", scheme)
			}
			assert.Equal(t, settings.ThemeBootstrap4, s.PaginationTheme)
		})
	}
}

// Generated URL for /home on a plain http request to example.com
func TestGeneratedURLScenarios(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "no FORCE_HTTPS key", env: map[string]string{}, want: "http://example.com/home"},
		{name: "FORCE_HTTPS=true", env: map[string]string{ForceHTTPSEnv: "true"}, want: "https://example.com/home"},
		{name: "FORCE_HTTPS=false", env: map[string]string{ForceHTTPSEnv: "false"}, want: "http://example.com/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := urlgen.New(bootApp(t, tt.env), urlgen.Options{})
			r := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
			assert.Equal(t, tt.want, gen.To(r, "/home", nil))
		})
	}
}

func TestDefaultSequenceWithDatabase(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "error"
	cfg.Database.URI = filepath.Join(t.TempDir(), "app.db")

	var logs bytes.Buffer
	app, err := DefaultSequence(cfg, config.MapLookup(map[string]string{ForceHTTPSEnv: "1"}), &logs).Run(context.Background())
	require.NoError(t, err)
	defer app.Shutdown(context.Background())

	store, err := Resolve[db.PostStore](app.Container, ServicePostStore)
	require.NoError(t, err)
	require.NoError(t, store.Ping(context.Background()))

	bound, err := Resolve[*config.Config](app.Container, ServiceConfig)
	require.NoError(t, err)
	assert.Same(t, cfg, bound)

	scheme, forced := app.Settings.ForcedScheme()
	assert.True(t, forced)
	assert.Equal(t, "https", scheme)
}

func TestDatabaseProviderUnsupported(t *testing.T) {
	p := NewDatabaseProvider(config.DatabaseConfig{Provider: "cassandra", URI: "x"})
	_, err := NewSequence(p).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database provider")
}
