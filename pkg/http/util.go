package http

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL joins a base URL with a path and optional query parameters.
func BuildURL(baseURL, path string, query url.Values) (string, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("error parsing base URL: %w", err)
	}

	parsedURL.Path = strings.TrimSuffix(parsedURL.Path, "/") + "/" + strings.TrimPrefix(path, "/")

	if len(query) > 0 {
		parsedURL.RawQuery = query.Encode()
	}

	return parsedURL.String(), nil
}
