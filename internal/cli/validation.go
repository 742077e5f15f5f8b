package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/AI2HU/sitekit/internal/pagination"
)

// validatePort validates a TCP port input
func validatePort(input string) (string, error) {
	input = strings.TrimSpace(input)
	port, err := strconv.Atoi(input)
	if err != nil {
		return "", fmt.Errorf("invalid port: %s (must be a number)", input)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid port: %d (must be between 1 and 65535)", port)
	}
	return input, nil
}

// validateAppURL validates the application root URL
func validateAppURL(input string) (string, error) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return "", fmt.Errorf("app URL must start with http:// or https://")
	}
	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid app URL: %s", input)
	}
	return strings.TrimRight(input, "/"), nil
}

// validatePerPage validates the default page size
func validatePerPage(input string) (int, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid page size: %s (must be a number)", input)
	}
	if n < 1 || n > pagination.MaxPerPage {
		return 0, fmt.Errorf("invalid page size: %d (must be between 1 and %d)", n, pagination.MaxPerPage)
	}
	return n, nil
}
