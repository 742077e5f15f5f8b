package models

import (
	"time"
)

// Core domain models

// Post represents a listed article served in paginated views
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest represents the body of POST /api/v1/posts
type CreatePostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

// PostResponse represents a post with its absolute URL
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
