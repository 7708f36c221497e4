// Package catalog provides the catalog bounded context module.
package catalog

import (
	apphttp "ringly_backend/internal/http"
)

// Module is the catalog module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates the catalog module.
func NewModule() *Module {
	return &Module{handler: NewHandler()}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/catalog")
	group.GET("/plans", m.handler.ListPlans)
	group.GET("/voices", m.handler.ListVoices)
	group.GET("/styles", m.handler.ListStyles)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
