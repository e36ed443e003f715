// Package repositories provides persistent storage for encoded save blobs.
// The stores do not interpret the blob; encoding and validation belong to
// the savegame package.
package repositories

import "context"

// SaveStore persists save blobs keyed by a save identifier.
type SaveStore interface {
	Close(ctx context.Context) error
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
