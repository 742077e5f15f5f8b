package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AI2HU/sitekit/internal/models"
	"github.com/AI2HU/sitekit/internal/settings"
)

// pageData is shared by the HTML views
type pageData struct {
	Title      string
	Bootstrap  bool
	CurrentURL string
	HomeURL    string
	PostsURL   string
	Posts      []models.PostResponse
	Links      template.HTML
	Total      int64
}

func (s *Server) newPageData(c *gin.Context, title string) pageData {
	theme := settings.FromContext(c).PaginationTheme
	return pageData{
		Title: title,
		Bootstrap: theme == settings.ThemeBootstrap4 || theme == settings.ThemeBootstrap5 ||
			theme == settings.ThemeSimpleBootstrap4 || theme == settings.ThemeSimpleBootstrap5,
		CurrentURL: s.urls.Full(c.Request),
		HomeURL:    s.urls.To(c.Request, "/home", nil),
		PostsURL:   s.urls.To(c.Request, "/posts", nil),
	}
}

// index handles GET / by redirecting to the home page
func (s *Server) index(c *gin.Context) {
	c.Redirect(http.StatusFound, s.urls.To(c.Request, "/home", nil))
}

// home handles GET /home
func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", s.newPageData(c, "Home"))
}

// postsPage handles GET /posts
func (s *Server) postsPage(c *gin.Context) {
	p, posts, err := s.paginatePosts(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to list posts")
		return
	}

	links, err := s.pager.Render(p)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to render pagination")
		return
	}

	data := s.newPageData(c, "Posts")
	data.Links = links
	data.Total = p.Total()
	data.Posts = make([]models.PostResponse, len(posts))
	for i, post := range posts {
		data.Posts[i] = s.postResponse(c, post)
	}

	c.HTML(http.StatusOK, "posts", data)
}

const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <link rel="canonical" href="{{.CurrentURL}}">
    {{- if .Bootstrap}}
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css">
    {{- else}}
    <script src="https://cdn.tailwindcss.com"></script>
    {{- end}}
</head>
<body>
    <nav><a href="{{.HomeURL}}">Home</a> | <a href="{{.PostsURL}}">Posts</a></nav>
{{end}}

{{define "foot"}}
</body>
</html>
{{end}}

{{define "home"}}{{template "head" .}}
    <main>
        <h1>Welcome</h1>
        <p>This page lives at <a id="self" href="{{.HomeURL}}">{{.HomeURL}}</a>.</p>
    </main>
{{template "foot" .}}{{end}}

{{define "posts"}}{{template "head" .}}
    <main>
        <h1>Posts ({{.Total}})</h1>
        <ul class="posts">
            {{- range .Posts}}
            <li><a href="{{.URL}}">{{.Title}}</a></li>
            {{- else}}
            <li>No posts yet.</li>
            {{- end}}
        </ul>
        {{.Links}}
    </main>
{{template "foot" .}}{{end}}
`
