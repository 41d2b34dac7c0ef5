package interfaces

import "context"

// IDocumentStore abstracts object storage for rendered documents (e.g. S3).
// Put stores body under key and returns a stable URL. Writing the same key
// twice overwrites, which is what makes document regeneration idempotent.
type IDocumentStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
