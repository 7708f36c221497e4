package calls

import (
	apphttp "ringly_backend/internal/http"
	"ringly_backend/platform/config"
	"ringly_backend/platform/logger"
	"ringly_backend/platform/validator"
)

// Module is the calls module implementing http.Module.
type Module struct {
	handler *Handler
	cache   *PreviewCache
}

// NewModule creates and wires the calls module.
func NewModule(
	callClient CallClient,
	tts Synthesizer,
	cache *PreviewCache,
	cfg config.VapiConfig,
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	service := NewService(callClient, tts, cache, cfg, log)
	return &Module{
		handler: NewHandler(service, val),
		cache:   cache,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "calls"
}

// Close releases the preview cache connection.
func (m *Module) Close() error {
	return m.cache.Close()
}

// RegisterRoutes mounts the demo call and preview routes. The demo call
// route sits behind the stricter per-IP limiter because it places real
// outbound phone calls.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/call-me", ctx.CallRateLimiter.RateLimit(), m.handler.CallMe)
	ctx.API.GET("/voice-preview", m.handler.VoicePreview)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
