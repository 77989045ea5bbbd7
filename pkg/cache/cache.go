// Package cache stores baked distance fields so repeated runs with the same
// input and parameters skip the expensive compute phase.
package cache

import (
	"context"
	"time"
)

// TTLField is how long baked field artifacts stay valid. Baking is a pure
// function of input bytes and parameters, so entries only expire to bound
// disk usage.
const TTLField = 30 * 24 * time.Hour

// Cache stores opaque byte blobs under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A zero ttl means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Params identifies a bake for caching purposes. Two runs with equal Params
// and equal input bytes produce byte-identical output.
type Params struct {
	SourceHash string `json:"source_hash"`
	SourceSize int    `json:"source_size"`
	MaxDist    int    `json:"max_dist"`
	TargetSize int    `json:"target_size"`
	Negate     bool   `json:"negate"`
}

// FieldKey generates the cache key for a baked field artifact. The worker
// count is not part of the key: the field is byte-identical for any count.
func FieldKey(p Params) string {
	return hashKey("field", p)
}
