package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AI2HU/sitekit/internal/db"
	"github.com/AI2HU/sitekit/internal/models"
	"github.com/AI2HU/sitekit/internal/pagination"
)

// Post endpoints

const (
	maxTitleLength = 200
	maxBodyLength  = 10000
)

// paginatePosts loads the page of posts requested by c
func (s *Server) paginatePosts(c *gin.Context) (*pagination.Paginator, []*models.Post, error) {
	page, perPage := pagination.ParsePageParams(c, s.perPage)

	total, err := s.posts.CountPosts(c.Request.Context())
	if err != nil {
		return nil, nil, err
	}

	p := pagination.New(total, perPage, page, pagination.Options{
		Path:       s.urls.Current(c.Request),
		Query:      c.Request.URL.Query(),
		OnEachSide: s.onEachSide,
	})

	posts, err := s.posts.ListPosts(c.Request.Context(), p.PerPage(), p.Offset())
	if err != nil {
		return nil, nil, err
	}
	return p, posts, nil
}

func (s *Server) postResponse(c *gin.Context, post *models.Post) models.PostResponse {
	return models.PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		URL:       s.urls.To(c.Request, "/api/v1/posts/"+post.ID, nil),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// listPosts handles GET /api/v1/posts
func (s *Server) listPosts(c *gin.Context) {
	p, posts, err := s.paginatePosts(c)
	if err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Failed to list posts: "+err.Error())
		return
	}

	responses := make([]models.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = s.postResponse(c, post)
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Data:       responses,
		Pagination: p.Meta(),
		Links:      p.Links(),
	})
}

// getPost handles GET /api/v1/posts/:id
func (s *Server) getPost(c *gin.Context) {
	id := c.Param("id")

	post, err := s.posts.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(c, http.StatusNotFound, "Post not found: "+id)
			return
		}
		s.errorResponse(c, http.StatusInternalServerError, "Failed to get post: "+err.Error())
		return
	}

	s.successResponse(c, s.postResponse(c, post))
}

// createPost handles POST /api/v1/posts
func (s *Server) createPost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.errorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		s.errorResponse(c, http.StatusBadRequest, "Title is required")
		return
	}
	if len(req.Title) > maxTitleLength {
		s.errorResponse(c, http.StatusBadRequest, "Title too long (max 200 characters)")
		return
	}
	if len(req.Body) > maxBodyLength {
		s.errorResponse(c, http.StatusBadRequest, "Body too long (max 10000 characters)")
		return
	}

	post := &models.Post{
		Title: req.Title,
		Body:  req.Body,
	}

	if err := s.posts.CreatePost(c.Request.Context(), post); err != nil {
		s.errorResponse(c, http.StatusInternalServerError, "Failed to create post: "+err.Error())
		return
	}

	response := s.postResponse(c, post)
	c.Header("Location", response.URL)
	c.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    response,
		Message: "Post created successfully",
	})
}
