package domain

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// CopyAckDuration is how long a copied share link stays acknowledged.
const CopyAckDuration = 2 * time.Second

// Location is the page a share link points back to, e.g.
// Origin "https://example.com" and Path "/polls/".
type Location struct {
	Origin string
	Path   string
}

// ParseLocation splits an absolute URL into origin and path. Query and
// fragment are dropped.
func ParseLocation(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("invalid location %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Location{}, fmt.Errorf("invalid location %q: scheme and host are required", raw)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return Location{Origin: u.Scheme + "://" + u.Host, Path: path}, nil
}

// ShareLink builds "<origin><path>?poll=<id>". The poll is not looked up.
func ShareLink(loc Location, pollID uuid.UUID) string {
	return loc.Origin + loc.Path + "?poll=" + pollID.String()
}
