package urlgen

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AI2HU/sitekit/internal/settings"
)

func forcedHTTPS() settings.Settings {
	b := settings.NewBuilder()
	b.ForceScheme("https")
	return b.Build()
}

func newRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestToInfersSchemeFromRequest(t *testing.T) {
	g := New(settings.Default(), Options{})

	assert.Equal(t, "http://example.com/home", g.To(newRequest("http://example.com/"), "/home", nil))

	secure := newRequest("https://example.com/")
	secure.TLS = &tls.ConnectionState{}
	assert.Equal(t, "https://example.com/home", g.To(secure, "/home", nil))
}

func TestToForcedScheme(t *testing.T) {
	g := New(forcedHTTPS(), Options{})

	assert.Equal(t, "https://example.com/home", g.To(newRequest("http://example.com/"), "/home", nil))
	assert.Equal(t, "https", g.Scheme(newRequest("http://example.com/")))
}

func TestToNormalisesPathAndQuery(t *testing.T) {
	g := New(settings.Default(), Options{})
	r := newRequest("http://example.com/")

	assert.Equal(t, "http://example.com/home", g.To(r, "home", nil))
	assert.Equal(t, "http://example.com/", g.To(r, "", nil))
	assert.Equal(t, "http://example.com/a/b", g.To(r, "//a//b", nil))
	assert.Equal(t, "http://example.com/posts?page=2", g.To(r, "/posts", url.Values{"page": {"2"}}))
}

func TestToLeavesAbsoluteURLs(t *testing.T) {
	g := New(forcedHTTPS(), Options{})
	assert.Equal(t, "http://other.org/x", g.To(newRequest("http://example.com/"), "http://other.org/x", nil))
}

func TestTrustedProxyHeaders(t *testing.T) {
	r := newRequest("http://internal:8080/")
	r.Header.Set("X-Forwarded-Proto", "https, http")
	r.Header.Set("X-Forwarded-Host", "example.com")

	trusted := New(settings.Default(), Options{TrustProxies: true})
	assert.Equal(t, "https://example.com/home", trusted.To(r, "/home", nil))

	untrusted := New(settings.Default(), Options{})
	assert.Equal(t, "http://internal:8080/home", untrusted.To(r, "/home", nil))
}

func TestWithoutRequestUsesRoot(t *testing.T) {
	g := New(settings.Default(), Options{RootURL: "https://example.com/app/"})
	assert.Equal(t, "https://example.com/app/home", g.To(nil, "/home", nil))

	forced := New(func() settings.Settings {
		b := settings.NewBuilder()
		b.ForceScheme("http")
		return b.Build()
	}(), Options{RootURL: "https://example.com"})
	assert.Equal(t, "http://example.com/home", forced.To(nil, "/home", nil))

	bare := New(settings.Default(), Options{})
	assert.Equal(t, "http://localhost/home", bare.To(nil, "home", nil))
}

func TestCurrentFullSecure(t *testing.T) {
	g := New(settings.Default(), Options{})
	r := newRequest("http://example.com/posts?page=3&sort=new")

	assert.Equal(t, "http://example.com/posts", g.Current(r))
	assert.Equal(t, "http://example.com/posts?page=3&sort=new", g.Full(r))
	assert.Equal(t, "https://example.com/login", g.Secure(r, "/login"))
}

func TestMiddlewareAndFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(Middleware(New(forcedHTTPS(), Options{})))
	r.GET("/home", func(c *gin.Context) {
		got = FromContext(c).Current(c.Request)
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), newRequest("http://example.com/home"))
	assert.Equal(t, "https://example.com/home", got)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = newRequest("http://example.com/home")
	assert.Equal(t, "http://example.com/home", FromContext(c).Current(c.Request))
}
