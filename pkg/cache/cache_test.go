package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "scene"); err != nil || hit {
		t.Fatalf("Get on empty cache = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "scene", []byte(`{"left":"100px"}`), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "scene")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if string(data) != `{"left":"100px"}` {
		t.Errorf("Get = %s, want the stored value", data)
	}

	if err := c.Delete(ctx, "scene"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "scene"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "scene"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	path := c.path("broken")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "broken"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v; want silent miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatalf("Set(%s) error: %v", k, err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	entries, err := os.ReadDir(c.Dir())
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear, want 0", len(entries))
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	sk1 := k.SceneKey("hash123", SceneKeyOpts{Strategy: "auto"})
	sk2 := k.SceneKey("hash123", SceneKeyOpts{Strategy: "elastic"})
	if sk1 == sk2 {
		t.Error("Different SceneKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(sk1, "scene:v1:") {
		t.Errorf("SceneKey = %s, want scene:v1: prefix", sk1)
	}

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Grid: 50})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if ak1 == k.ArtifactKey("hash456", ArtifactKeyOpts{Format: "svg"}) {
		t.Error("Different scene hashes should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:123:")

	want := "tenant:123:" + inner.SceneKey("h", SceneKeyOpts{})
	if got := scoped.SceneKey("h", SceneKeyOpts{}); got != want {
		t.Errorf("SceneKey = %s, want %s", got, want)
	}
	if got := scoped.ArtifactKey("h", ArtifactKeyOpts{}); !strings.HasPrefix(got, "tenant:123:artifact:") {
		t.Errorf("ArtifactKey should be prefixed: %s", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	if got := scoped.SceneKey("h", SceneKeyOpts{}); !strings.HasPrefix(got, "prefix:scene:") {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrBackend)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrBackend.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if !errors.Is(err, ErrBackend) {
		t.Error("errors.Is should see through RetryableError")
	}
	if IsRetryable(errPermanent) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

var errPermanent = errors.New("permanent")

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err %v, calls %d; want nil, 1", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return errPermanent
	})
	if err != errPermanent || calls != 1 {
		t.Errorf("non-retryable: err %v, calls %d; want %v, 1", err, calls, errPermanent)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrBackend)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry: err %v, calls %d; want nil, 2", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrBackend)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisConfig{URL: "http://not-redis"})
	if err == nil {
		t.Fatal("NewRedisCache with a non-redis URL should fail")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	if err == nil {
		t.Fatal("NewRedisCache against a closed port should fail")
	}
}
