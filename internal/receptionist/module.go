// Package receptionist wires the configuration bounded context: wizard
// submissions, checkout session creation, and post-payment provisioning.
package receptionist

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"ringly_backend/internal/events"
	apphttp "ringly_backend/internal/http"
	"ringly_backend/internal/receptionist/handler"
	"ringly_backend/internal/receptionist/repository"
	"ringly_backend/internal/receptionist/service"
	"ringly_backend/platform/config"
	"ringly_backend/platform/logger"
	"ringly_backend/platform/validator"
)

// Module is the receptionist configuration module implementing http.Module.
type Module struct {
	handler     *handler.Handler
	provisioner *service.Provisioner
}

// NewModule creates and wires the receptionist module. checkout and
// assistants may be nil when the corresponding credentials are absent.
func NewModule(
	db *pgxpool.Pool,
	checkout service.CheckoutClient,
	assistants service.AssistantClient,
	bus events.Bus,
	cfg config.CheckoutConfig,
	val *validator.Validator,
	log *logger.Logger,
) *Module {
	repo := repository.NewPostgresRepository(db)
	svc := service.NewService(repo, checkout, cfg, log)
	provisioner := service.NewProvisioner(repo, assistants, bus, log)

	return &Module{
		handler:     handler.NewHandler(svc, val),
		provisioner: provisioner,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "receptionist"
}

// Provisioner exposes the provisioning orchestrator to the billing module.
func (m *Module) Provisioner() *service.Provisioner {
	return m.provisioner
}

// RegisterRoutes mounts the configuration routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/save-config", m.handler.SaveConfig)
	ctx.API.GET("/config/:id/status", m.handler.Status)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
