// Package cache stores resolved scenes and rendered artifacts.
//
// Backends implement [Cache]: [FileCache] for the CLI, [RedisCache] for the
// HTTP service shared between instances, and [NullCache] when caching is
// disabled. Keys are built by a [Keyer] so every backend agrees on them.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. hit is false on a miss or an expired
	// entry.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys from content hashes and options.
type Keyer interface {
	// SceneKey is the key of a resolved scene.
	SceneKey(sceneHash string, opts SceneKeyOpts) string

	// ArtifactKey is the key of a rendered artifact.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// SceneKeyOpts are the inputs besides the scene that change a resolution.
type SceneKeyOpts struct {
	Strategy string `json:"strategy,omitempty"`
	Ticks    int    `json:"ticks,omitempty"`
}

// ArtifactKeyOpts are the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Labels bool    `json:"labels,omitempty"`
	Grid   float64 `json:"grid,omitempty"`
	Style  string  `json:"style,omitempty"`
}

// Default expiries.
const (
	TTLScene    = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// keyVersion is bumped whenever cached payloads change shape.
const keyVersion = "v1"

// DefaultKeyer builds keys of the form "<kind>:<version>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SceneKey implements Keyer.
func (DefaultKeyer) SceneKey(sceneHash string, opts SceneKeyOpts) string {
	return hashKey("scene:"+keyVersion, sceneHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+keyVersion, sceneHash, opts)
}
