package ports

import "context"

// BlobStore define el puerto hacia el object store (S3 o compatible).
// Delete es idempotente: borrar una key inexistente no es error para el caller.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
