// Package storage wraps the object store behind a small interface so the
// lifecycle manager and the handlers never touch the AWS SDK directly, and
// so tests can substitute an in-memory store.
package storage

import (
	"context"
	"io"
	"time"
)

type ObjectInfo struct {
	Key          string    `json:"key"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

type PresignedUpload struct {
	UploadURL string    `json:"uploadUrl"`
	Key       string    `json:"key"`
	MediaURL  string    `json:"mediaUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ObjectStore is a dumb blob container: it has no notion of which row owns
// an object. Put returns the public locator for the stored object. Delete
// takes a locator and derives the key itself. All failures surface as
// apperr store-unavailable errors, never silently swallowed.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (locator string, err error)
	Delete(ctx context.Context, locator string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (*PresignedUpload, error)
}
