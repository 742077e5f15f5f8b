package db

import (
	"context"
	"errors"

	"github.com/AI2HU/sitekit/internal/models"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// Database defines connection management shared by every provider
type Database interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
}

// PostStore defines the operations behind paginated post listings
type PostStore interface {
	Database

	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CountPosts(ctx context.Context) (int64, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error)
	DeleteAllPosts(ctx context.Context) (int, error)
}
