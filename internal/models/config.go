package models

// Configuration models

// Config holds database configuration
type Config struct {
	Provider string            // sqlite
	URI      string            // Connection URI or file path
	Options  map[string]string // Provider-specific options
}
