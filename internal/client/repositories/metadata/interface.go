// Package metadata is the durable key-value store behind the session and the
// remembered username.
package metadata

import (
	"context"
)

// Repository stores string values by key. Get reports ok=false for a missing
// key rather than an error; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
