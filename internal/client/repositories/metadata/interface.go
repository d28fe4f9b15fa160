// Package metadata is the durable key-value store of the client. It keeps the
// persisted token record (token, user, rememberMe) in the SQLite "metadata"
// table so a session survives process restarts.
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. Get returns (nil, nil) for a
// missing key; Delete of an absent key is a no-op.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
