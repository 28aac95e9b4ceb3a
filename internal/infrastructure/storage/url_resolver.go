package storage

import (
	"strings"
)

// URLResolver maps stored file paths to the URL they are served from.
type URLResolver interface {
	PublicURL(path string) *string
}

type publicURLResolver struct {
	baseURL string
}

// NewURLResolver serves files under <baseURL>/storage/.
func NewURLResolver(baseURL string) URLResolver {
	return &publicURLResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// PublicURL returns nil for an empty path.
func (r *publicURLResolver) PublicURL(path string) *string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return nil
	}
	url := r.baseURL + "/storage/" + path
	return &url
}
