package models

// APIResponse is the envelope for every JSON endpoint
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Pagination describes the page window of a paginated response
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PaginationLinks holds absolute URLs for page navigation
type PaginationLinks struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// PaginatedResponse wraps a page of data
type PaginatedResponse struct {
	Data       interface{}     `json:"data"`
	Pagination Pagination      `json:"pagination"`
	Links      PaginationLinks `json:"links"`
}

// SettingsResponse reports the effective boot-time settings
type SettingsResponse struct {
	PaginationTheme string `json:"pagination_theme"`
	ForcedScheme    string `json:"forced_scheme,omitempty"`
}

// URLResponse carries one generated absolute URL
type URLResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
