// Package storage holds resume and offer letter blobs for employee
// records. Blob deletion is a best-effort cleanup: a failed delete is
// logged by the caller but never aborts the surrounding record update.
package storage

import (
	"context"
	"io"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type BlobStore interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	// URL returns the publicly reachable address for a stored key,
	// used for spreadsheet hyperlinks and API responses.
	URL(key string) string
}
