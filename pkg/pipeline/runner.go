package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/overlaykit/pkg/cache"
	"github.com/matzehuels/overlaykit/pkg/observability"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

// Cache key types reported to observability.CacheHooks.
const (
	keyTypeScene    = "scene"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner holds no pipeline results, so multiple goroutines can share
// one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute resolves s and renders every requested format.
func (r *Runner) Execute(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hash, err := SceneHash(s)
	if err != nil {
		return nil, fmt.Errorf("hash scene: %w", err)
	}
	result := &Result{Scene: s, SceneHash: hash}

	resolveStart := time.Now()
	res, resolveHit, err := r.resolve(ctx, s, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Resolution = res
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.Steps = len(res.Steps)
	result.CacheInfo.ResolveHit = resolveHit

	r.Logger.Info("resolved scene",
		"scene", s.Name,
		"strategy", res.Strategy,
		"cached", resolveHit,
		"duration", result.Stats.ResolveTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.render(ctx, res, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveWithCacheInfo resolves s with caching and returns cache hit info.
func (r *Runner) ResolveWithCacheInfo(ctx context.Context, s *scene.Scene, opts Options) (*scene.Result, bool, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	hash, err := SceneHash(s)
	if err != nil {
		return nil, false, fmt.Errorf("hash scene: %w", err)
	}
	return r.resolve(ctx, s, hash, opts)
}

// Resolve is a convenience wrapper that calls ResolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Resolve(ctx context.Context, s *scene.Scene, opts Options) (*scene.Result, error) {
	res, _, err := r.ResolveWithCacheInfo(ctx, s, opts)
	return res, err
}

func (r *Runner) resolve(ctx context.Context, s *scene.Scene, hash string, opts Options) (res *scene.Result, hit bool, err error) {
	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, s.Name, s.Strategy)
	start := time.Now()
	defer func() { hooks.OnResolveComplete(ctx, s.Name, s.Strategy, time.Since(start), err) }()

	cacheKey := r.Keyer.SceneKey(hash, SceneKeyOpts(s))
	if !opts.Refresh {
		if data, ok, gerr := r.Cache.Get(ctx, cacheKey); gerr == nil && ok {
			var cached scene.Result
			if json.Unmarshal(data, &cached) == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeScene)
				return &cached, true, nil
			}
			// Undecodable entries are recomputed and overwritten.
		} else if gerr != nil {
			opts.Logger.Warn("cache read failed", "key", cacheKey, "err", gerr)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeScene)
	}

	res, err = scene.Resolve(s)
	if err != nil {
		return nil, false, err
	}

	if data, merr := json.Marshal(res); merr == nil {
		if serr := r.Cache.Set(ctx, cacheKey, data, cache.TTLScene); serr != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "err", serr)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeScene, len(data))
		}
	}
	return res, false, nil
}

// RenderWithCacheInfo renders res with caching and returns cache hit info.
// sceneHash keys the artifacts; it is the hash of the scene res came from.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *scene.Result, sceneHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	return r.render(ctx, res, sceneHash, opts)
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res *scene.Result, sceneHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, sceneHash, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, res *scene.Result, hash string, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, res.Scene)
	start := time.Now()
	defer func() {
		size := 0
		for _, data := range artifacts {
			size += len(data)
		}
		hooks.OnRenderComplete(ctx, res.Scene, size, time.Since(start), err)
	}()

	if !opts.Refresh {
		cached := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok, gerr := r.Cache.Get(ctx, r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)))
			if gerr != nil || !ok {
				break
			}
			cached[format] = data
		}
		if len(cached) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			return cached, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
	}

	rendered, err := Render(res, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if serr := r.Cache.Set(ctx, key, data, cache.TTLArtifact); serr != nil {
			opts.Logger.Warn("cache write failed", "key", key, "err", serr)
			continue
		}
		observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
