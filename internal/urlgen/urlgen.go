package urlgen

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AI2HU/sitekit/internal/settings"
)

// Generator builds absolute URLs. Its configuration is fixed at construction.
type Generator struct {
	forcedScheme string
	root         *url.URL
	trustProxies bool
}

// Options configures a Generator beyond the boot settings
type Options struct {
	// RootURL is used when no request is available, e.g. from the CLI
	RootURL string
	// TrustProxies honors X-Forwarded-Proto and X-Forwarded-Host
	TrustProxies bool
}

// New creates a generator from the boot settings
func New(s settings.Settings, opts Options) *Generator {
	g := &Generator{trustProxies: opts.TrustProxies}
	if scheme, ok := s.ForcedScheme(); ok {
		g.forcedScheme = scheme
	}
	if opts.RootURL != "" {
		if u, err := url.Parse(strings.TrimRight(opts.RootURL, "/")); err == nil && u.Host != "" {
			g.root = u
		}
	}
	return g
}

// To returns the absolute URL for path. r may be nil.
func (g *Generator) To(r *http.Request, path string, query url.Values) string {
	if isAbsolute(path) {
		return path
	}

	path = "/" + strings.TrimLeft(path, "/")
	if r == nil {
		path = g.basePath() + path
	}
	return g.to(r, path, query)
}

// Secure returns the absolute https URL for path regardless of settings
func (g *Generator) Secure(r *http.Request, path string) string {
	u, err := url.Parse(g.To(r, path, nil))
	if err != nil {
		return ""
	}
	u.Scheme = "https"
	return u.String()
}

// Current returns the absolute URL of the request path without its query
func (g *Generator) Current(r *http.Request) string {
	if r == nil {
		return g.To(nil, "/", nil)
	}
	return g.to(r, r.URL.Path, nil)
}

// Full returns the absolute URL of the request including its query
func (g *Generator) Full(r *http.Request) string {
	if r == nil {
		return g.To(nil, "/", nil)
	}
	return g.to(r, r.URL.Path, r.URL.Query())
}

// to builds from a request path, which already carries any mount prefix
func (g *Generator) to(r *http.Request, path string, query url.Values) string {
	u := url.URL{
		Scheme: g.scheme(r),
		Host:   g.host(r),
		Path:   normalisePath(path),
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Scheme reports the scheme To would use for r
func (g *Generator) Scheme(r *http.Request) string {
	return g.scheme(r)
}

func (g *Generator) scheme(r *http.Request) string {
	if g.forcedScheme != "" {
		return g.forcedScheme
	}
	if r == nil {
		if g.root != nil && g.root.Scheme != "" {
			return g.root.Scheme
		}
		return "http"
	}
	if g.trustProxies {
		if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto == "https" || proto == "http" {
			return proto
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func (g *Generator) host(r *http.Request) string {
	if r != nil {
		if g.trustProxies {
			if h := firstHeaderValue(r, "X-Forwarded-Host"); h != "" {
				return h
			}
		}
		if r.Host != "" {
			return r.Host
		}
	}
	if g.root != nil {
		return g.root.Host
	}
	return "localhost"
}

// basePath is the path prefix of the root URL
func (g *Generator) basePath() string {
	if g.root == nil {
		return ""
	}
	return strings.TrimRight(g.root.Path, "/")
}

func firstHeaderValue(r *http.Request, name string) string {
	v := r.Header.Get(name)
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.ToLower(strings.TrimSpace(v))
}

func normalisePath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

func isAbsolute(path string) bool {
	u, err := url.Parse(path)
	return err == nil && u.Scheme != "" && u.Host != ""
}

const contextKey = "sitekit.urlgen"

// Middleware exposes g to every handler through the gin context
func Middleware(g *Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, g)
		c.Next()
	}
}

// FromContext returns the generator injected by Middleware.
// Without one it infers everything from the request.
func FromContext(c *gin.Context) *Generator {
	if v, ok := c.Get(contextKey); ok {
		if g, ok := v.(*Generator); ok {
			return g
		}
	}
	return New(settings.Default(), Options{})
}
