package script

import (
	"context"

	apphttp "ringly_backend/internal/http"
	"ringly_backend/platform/config"
	"ringly_backend/platform/logger"
	"ringly_backend/platform/validator"
)

// Module is the script generation module implementing http.Module.
type Module struct {
	handler   *Handler
	generator *Generator
}

// NewModule creates and initializes the script module.
func NewModule(ctx context.Context, cfg config.GeminiConfig, val *validator.Validator, log *logger.Logger) (*Module, error) {
	generator, err := NewGenerator(ctx, cfg.GetGeminiAPIKey(), cfg.GetGeminiModel(), log)
	if err != nil {
		return nil, err
	}

	return &Module{
		handler:   NewHandler(generator, val),
		generator: generator,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "script"
}

// Generator returns the generator for use by other modules.
func (m *Module) Generator() *Generator {
	return m.generator
}

// RegisterRoutes mounts the script routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/generate-script", m.handler.Generate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
