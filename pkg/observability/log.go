package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks forwards every event to a charmbracelet logger at debug level,
// except errors which are logged as warnings.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l. A nil logger uses log.Default().
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnFit(strategy string, fitHorizontal, fitVertical bool) {
	h.logger.Debug("viewport fit", "strategy", strategy, "horizontal", fitHorizontal, "vertical", fitVertical)
}

func (h *LogHooks) OnFlip(strategy, axis string) {
	h.logger.Debug("flipped", "strategy", strategy, "axis", axis)
}

func (h *LogHooks) OnPush(strategy, axis string, amount float64) {
	h.logger.Debug("pushed", "strategy", strategy, "axis", axis, "amount", amount)
}

func (h *LogHooks) OnResize(strategy string, width, height float64) {
	h.logger.Debug("resized", "strategy", strategy, "width", width, "height", height)
}

func (h *LogHooks) OnArrow(placement string) {
	h.logger.Debug("arrow placed", "placement", placement)
}

func (h *LogHooks) OnResolveStart(_ context.Context, scene, strategy string) {
	h.logger.Debug("resolving scene", "scene", scene, "strategy", strategy)
}

func (h *LogHooks) OnResolveComplete(_ context.Context, scene, strategy string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("resolve failed", "scene", scene, "strategy", strategy, "err", err)
		return
	}
	h.logger.Debug("resolved scene", "scene", scene, "strategy", strategy, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, scene string) {
	h.logger.Debug("rendering scene", "scene", scene)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, scene string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "scene", scene, "err", err)
		return
	}
	h.logger.Debug("rendered scene", "scene", scene, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status, "duration", d)
}

var (
	_ PositionHooks = (*LogHooks)(nil)
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
