package pagination

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/AI2HU/sitekit/internal/settings"
)

// Renderer turns a Paginator into navigation markup for one theme
type Renderer struct {
	theme settings.Theme
	tmpl  *template.Template
}

// view is the data every theme template receives
type view struct {
	HasPages     bool
	OnFirstPage  bool
	HasMorePages bool
	PreviousURL  string
	NextURL      string
	Elements     []Element
	CurrentPage  int
	LastPage     int
	FirstItem    int64
	LastItem     int64
	Total        int64
}

var themeTemplates = map[settings.Theme]string{
	settings.ThemeTailwind:         tailwindTemplate,
	settings.ThemeBootstrap4:       bootstrap4Template,
	settings.ThemeBootstrap5:       bootstrap5Template,
	settings.ThemeSimpleTailwind:   simpleTailwindTemplate,
	settings.ThemeSimpleBootstrap4: simpleBootstrap4Template,
	settings.ThemeSimpleBootstrap5: simpleBootstrap5Template,
}

// NewRenderer parses the templates of theme. Unknown themes fall back to the default.
func NewRenderer(theme settings.Theme) (*Renderer, error) {
	src, ok := themeTemplates[theme]
	if !ok {
		theme = settings.DefaultPaginationTheme
		src = themeTemplates[theme]
	}

	tmpl, err := template.New(string(theme)).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s pagination template: %w", theme, err)
	}
	return &Renderer{theme: theme, tmpl: tmpl}, nil
}

// ForSettings returns the renderer for the boot-selected theme
func ForSettings(s settings.Settings) (*Renderer, error) {
	return NewRenderer(s.PaginationTheme)
}

// Theme returns the theme this renderer draws
func (r *Renderer) Theme() settings.Theme {
	return r.theme
}

// Render returns the navigation markup, or "" when there is a single page
func (r *Renderer) Render(p *Paginator) (template.HTML, error) {
	if !p.HasPages() {
		return "", nil
	}

	v := view{
		HasPages:     true,
		OnFirstPage:  p.OnFirstPage(),
		HasMorePages: p.HasMorePages(),
		PreviousURL:  p.PreviousPageURL(),
		NextURL:      p.NextPageURL(),
		Elements:     p.Elements(),
		CurrentPage:  p.CurrentPage(),
		LastPage:     p.LastPage(),
		FirstItem:    p.FirstItem(),
		LastItem:     p.LastItem(),
		Total:        p.Total(),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render pagination: %w", err)
	}
	return template.HTML(buf.String()), nil
}
