package billing

import (
	apphttp "ringly_backend/internal/http"
	"ringly_backend/platform/config"
	"ringly_backend/platform/logger"
)

// Module is the billing webhook module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and wires the billing module.
func NewModule(provisioner Provisioner, cfg config.CheckoutConfig, log *logger.Logger) *Module {
	service := NewService(provisioner, log)
	return &Module{
		handler: NewHandler(service, cfg.GetStripeWebhookSecret(), log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "billing"
}

// RegisterRoutes mounts the webhook route.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/stripe-webhook", m.handler.HandleWebhook)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
