package settings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBuilderDefaults(t *testing.T) {
	s := NewBuilder().Build()

	assert.Equal(t, ThemeTailwind, s.PaginationTheme)
	_, forced := s.ForcedScheme()
	assert.False(t, forced)
}

func TestUseBootstrapIsIdempotent(t *testing.T) {
	b := NewBuilder()
	b.UseBootstrap()
	once := b.Build()
	b.UseBootstrap()
	twice := b.Build()

	assert.Equal(t, ThemeBootstrap4, once.PaginationTheme)
	assert.Equal(t, once, twice)
}

func TestForceSchemeNormalisation(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		forced bool
	}{
		{in: "https", want: "https", forced: true},
		{in: "HTTPS", want: "https", forced: true},
		{in: "https://", want: "https", forced: true},
		{in: "http", want: "http", forced: true},
		{in: "ftp", forced: false},
		{in: "", forced: false},
	}

	for _, tt := range tests {
		b := NewBuilder()
		b.ForceScheme(tt.in)
		got, forced := b.Build().ForcedScheme()
		assert.Equal(t, tt.forced, forced, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestBuildSnapshotIsDetached(t *testing.T) {
	b := NewBuilder()
	snap := b.Build()
	b.UseBootstrapFive()
	b.ForceScheme("https")

	assert.Equal(t, ThemeTailwind, snap.PaginationTheme)
	_, forced := snap.ForcedScheme()
	assert.False(t, forced)
}

func TestUnknownThemeIgnored(t *testing.T) {
	b := NewBuilder()
	b.UsePaginationTheme(Theme("foundation"))
	assert.Equal(t, ThemeTailwind, b.Build().PaginationTheme)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	b := NewBuilder()
	b.UseBootstrap()
	b.ForceScheme("https")
	want := b.Build()

	var got Settings
	r := gin.New()
	r.Use(Middleware(want))
	r.GET("/", func(c *gin.Context) {
		got = FromContext(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, want, got)
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, Default(), FromContext(c))
}
