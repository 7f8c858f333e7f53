package ports

import "context"

// CredentialStore keeps bearer credentials at rest, keyed so multiple
// environments can coexist under one store root.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
