// Package storage wraps the external file-storage provider. Callers hand
// it a local file path and get back a durable URL; everything else about
// the provider is opaque.
package storage

import "context"

type Gateway interface {
	// Upload pushes the file at localPath into the given provider folder
	// and returns the resulting URL.
	Upload(ctx context.Context, localPath, folder string) (string, error)
	// Delete removes a previously uploaded file by its URL. Best effort:
	// callers treat failures as non-fatal.
	Delete(ctx context.Context, url string) error
}
