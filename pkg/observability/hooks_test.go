package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPositionHooks{}
	p.OnFit("auto", false, true)
	p.OnFlip("auto", AxisHorizontal)
	p.OnPush("auto", AxisVertical, -12)
	p.OnResize("elastic", 200, 400)
	p.OnArrow("top-start")

	pl := NoopPipelineHooks{}
	pl.OnResolveStart(ctx, "dropdown", "auto")
	pl.OnResolveComplete(ctx, "dropdown", "auto", time.Millisecond, nil)
	pl.OnRenderStart(ctx, "dropdown")
	pl.OnRenderComplete(ctx, "dropdown", 1024, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/position")
	h.OnResponse(ctx, "POST", "/v1/position", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Position().(NoopPositionHooks); !ok {
		t.Error("Position() should return NoopPositionHooks by default")
	}
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customPosition := &testPositionHooks{}
	SetPositionHooks(customPosition)
	if Position() != customPosition {
		t.Error("SetPositionHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Position().(NoopPositionHooks); !ok {
		t.Error("Reset() should restore NoopPositionHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)

	h.OnFlip("auto", AxisHorizontal)
	h.OnResolveComplete(context.Background(), "dropdown", "auto", 0, errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "flipped") || !strings.Contains(out, "horizontal") {
		t.Errorf("log output missing flip event: %q", out)
	}
	if !strings.Contains(out, "resolve failed") || !strings.Contains(out, "boom") {
		t.Errorf("log output missing failure: %q", out)
	}
}

func TestLogHooksNilLogger(t *testing.T) {
	if h := NewLogHooks(nil); h.logger == nil {
		t.Error("NewLogHooks(nil) should fall back to the default logger")
	}
}

// Test implementations
type testPositionHooks struct{ NoopPositionHooks }
type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
