package storage

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Resolver is the pure bidirectional mapping between object keys and public
// locators. No I/O lives here; the S3 client and the lifecycle manager both
// lean on it so the two directions can never drift apart.
type Resolver struct {
	Bucket string
	Region string
	// Endpoint switches locator construction to path-style URLs for
	// S3-compatible services. Empty means the standard AWS form.
	Endpoint string
}

func NewResolver(bucket, region, endpoint string) *Resolver {
	return &Resolver{Bucket: bucket, Region: region, Endpoint: strings.TrimSuffix(endpoint, "/")}
}

func (r *Resolver) baseURL() string {
	if r.Endpoint != "" {
		return fmt.Sprintf("%s/%s", r.Endpoint, r.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", r.Bucket, r.Region)
}

// PublicURL builds the locator for a key. Each path segment is escaped
// individually so keys with spaces or unicode survive the round trip while
// the slashes separating segments stay literal.
func (r *Resolver) PublicURL(key string) string {
	segs := strings.Split(key, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return r.baseURL() + "/" + strings.Join(segs, "/")
}

// KeyFromURL inverts PublicURL by stripping the known bucket/region prefix.
// Locators pointing anywhere else are rejected, that is a caller bug.
func (r *Resolver) KeyFromURL(locator string) (string, error) {
	base := r.baseURL() + "/"
	if !strings.HasPrefix(locator, base) {
		return "", fmt.Errorf("locator %q does not belong to bucket %q", locator, r.Bucket)
	}
	raw := strings.TrimPrefix(locator, base)
	segs := strings.Split(raw, "/")
	for i, s := range segs {
		dec, err := url.PathUnescape(s)
		if err != nil {
			return "", fmt.Errorf("locator %q has an undecodable segment: %w", locator, err)
		}
		segs[i] = dec
	}
	key := strings.Join(segs, "/")
	if key == "" {
		return "", fmt.Errorf("locator %q carries no key", locator)
	}
	return key, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "_")
	if safe == "" || safe == "." {
		safe = "file"
	}
	return safe
}

// BuildKey produces "{prefix}/{uuidToken}-{sanitizedFilename}". The token is
// the collision guard: two uploads of the same filename never share a key.
func (r *Resolver) BuildKey(prefix, filename string) string {
	token := uuid.New().String()
	name := sanitizeFilename(filename)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return fmt.Sprintf("%s-%s", token, name)
	}
	return fmt.Sprintf("%s/%s-%s", prefix, token, name)
}
