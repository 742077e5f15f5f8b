package settings

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Theme names the markup used to render pagination links
type Theme string

const (
	ThemeTailwind         Theme = "tailwind"
	ThemeBootstrap4       Theme = "bootstrap-4"
	ThemeBootstrap5       Theme = "bootstrap-5"
	ThemeSimpleTailwind   Theme = "simple-tailwind"
	ThemeSimpleBootstrap4 Theme = "simple-bootstrap-4"
	ThemeSimpleBootstrap5 Theme = "simple-bootstrap-5"
)

// DefaultPaginationTheme is used until a provider selects another
const DefaultPaginationTheme = ThemeTailwind

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	switch t {
	case ThemeTailwind, ThemeBootstrap4, ThemeBootstrap5,
		ThemeSimpleTailwind, ThemeSimpleBootstrap4, ThemeSimpleBootstrap5:
		return true
	}
	return false
}

// Settings is the boot-time configuration visible to request handling.
// It is a value type; once built it never changes.
type Settings struct {
	PaginationTheme Theme
	forcedScheme    string
}

// Default returns settings with no theme override and no forced scheme
func Default() Settings {
	return Settings{PaginationTheme: DefaultPaginationTheme}
}

// ForcedScheme returns the scheme all absolute URLs must use, if any
func (s Settings) ForcedScheme() (string, bool) {
	return s.forcedScheme, s.forcedScheme != ""
}

// Builder collects settings during startup. Safe for concurrent use.
type Builder struct {
	mu     sync.Mutex
	theme  Theme
	scheme string
}

// NewBuilder returns a builder seeded with the defaults
func NewBuilder() *Builder {
	return &Builder{theme: DefaultPaginationTheme}
}

// UsePaginationTheme selects the theme; unknown themes are ignored
func (b *Builder) UsePaginationTheme(t Theme) {
	if !t.Valid() {
		return
	}
	b.mu.Lock()
	b.theme = t
	b.mu.Unlock()
}

// UseBootstrap selects the Bootstrap 4 theme
func (b *Builder) UseBootstrap() {
	b.UsePaginationTheme(ThemeBootstrap4)
}

// UseBootstrapFive selects the Bootstrap 5 theme
func (b *Builder) UseBootstrapFive() {
	b.UsePaginationTheme(ThemeBootstrap5)
}

// UseTailwind restores the default theme
func (b *Builder) UseTailwind() {
	b.UsePaginationTheme(ThemeTailwind)
}

// ForceScheme makes every generated absolute URL use scheme.
// "https", "HTTPS" and "https://" are equivalent; anything other than http/https is ignored.
func (b *Builder) ForceScheme(scheme string) {
	scheme = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(scheme), "://"))
	if scheme != "http" && scheme != "https" {
		return
	}
	b.mu.Lock()
	b.scheme = scheme
	b.mu.Unlock()
}

// Build returns an immutable snapshot of the collected settings
func (b *Builder) Build() Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Settings{PaginationTheme: b.theme, forcedScheme: b.scheme}
}

const contextKey = "sitekit.settings"

// Middleware exposes s to every handler through the gin context
func Middleware(s Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, s)
		c.Next()
	}
}

// FromContext returns the settings injected by Middleware, or the defaults
func FromContext(c *gin.Context) Settings {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(Settings); ok {
			return s
		}
	}
	return Default()
}
