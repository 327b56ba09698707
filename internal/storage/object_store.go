// Package storage holds the object-store abstraction used for CV uploads.
package storage

import "context"

// ObjectStore is the minimal contract the submission pipeline needs. Put has
// no-upsert semantics: writing a key that already exists must fail rather
// than silently overwrite.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
