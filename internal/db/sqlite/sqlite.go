package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/AI2HU/sitekit/internal/db"
	"github.com/AI2HU/sitekit/internal/models"
)

const memoryURI = ":memory:"

// SQLite implements db.PostStore for SQLite
type SQLite struct {
	db     *sql.DB
	config *models.Config
}

// New creates a new SQLite database instance
func New(config *models.Config) (*SQLite, error) {
	if config == nil || config.URI == "" {
		return nil, fmt.Errorf("sqlite: database uri is required")
	}
	return &SQLite{
		config: config,
	}, nil
}

// Connect establishes connection to SQLite and applies migrations
func (s *SQLite) Connect(ctx context.Context) error {
	dbPath, err := resolvePath(s.config.URI)
	if err != nil {
		return err
	}

	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database at path '%s': %w", dbPath, err)
	}

	// SQLite allows a single writer; in-memory databases exist per connection
	database.SetMaxOpenConns(1)

	// Test the connection
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return fmt.Errorf("failed to ping SQLite database at path '%s': %w", dbPath, err)
	}

	if err := db.RunMigrations(ctx, database); err != nil {
		database.Close()
		return err
	}

	s.db = database
	return nil
}

// resolvePath expands ~ and relative paths and ensures the parent directory exists
func resolvePath(uri string) (string, error) {
	if uri == memoryURI || strings.HasPrefix(uri, "file:") {
		return uri, nil
	}

	dbPath := uri
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	} else if !filepath.IsAbs(dbPath) {
		absPath, err := filepath.Abs(dbPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve absolute path: %w", err)
		}
		dbPath = absPath
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}
	return dbPath, nil
}

// Disconnect closes the SQLite connection
func (s *SQLite) Disconnect(ctx context.Context) error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// Ping checks the database connection
func (s *SQLite) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("not connected to database")
	}
	return s.db.PingContext(ctx)
}

// CreatePost inserts a post, assigning an ID and timestamps when missing
func (s *SQLite) CreatePost(ctx context.Context, post *models.Post) error {
	if s.db == nil {
		return fmt.Errorf("not connected to database")
	}
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	query := `INSERT INTO posts (id, title, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, post.ID, post.Title, post.Body, post.CreatedAt, post.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetPost retrieves a post by ID
func (s *SQLite) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if s.db == nil {
		return nil, fmt.Errorf("not connected to database")
	}

	query := `SELECT id, title, body, created_at, updated_at FROM posts WHERE id = ?`
	var post models.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.Title, &post.Body, &post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("post %s: %w", id, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// CountPosts returns the total number of posts
func (s *SQLite) CountPosts(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, fmt.Errorf("not connected to database")
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// ListPosts returns one window of posts, newest first
func (s *SQLite) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	if s.db == nil {
		return nil, fmt.Errorf("not connected to database")
	}
	if limit <= 0 {
		return []*models.Post{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT id, title, body, created_at, updated_at FROM posts
		ORDER BY created_at DESC, id ASC LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

// DeleteAllPosts removes every post and returns how many were deleted
func (s *SQLite) DeleteAllPosts(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("not connected to database")
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete posts: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted posts: %w", err)
	}
	return int(n), nil
}

// MigrationVersion reports the applied schema version
func (s *SQLite) MigrationVersion(ctx context.Context) (uint, bool, error) {
	if s.db == nil {
		return 0, false, fmt.Errorf("not connected to database")
	}
	return db.MigrationVersion(ctx, s.db)
}
