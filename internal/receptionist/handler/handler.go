// Package handler provides HTTP handlers for the receptionist
// configuration endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ringly_backend/internal/receptionist/service"
	"ringly_backend/internal/receptionist/transport"
	"ringly_backend/platform/httpkit"
	"ringly_backend/platform/validator"
)

// Handler serves the configuration endpoints.
type Handler struct {
	service *service.Service
	val     *validator.Validator
}

// NewHandler creates a configuration handler.
func NewHandler(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{service: svc, val: val}
}

// SaveConfig persists a wizard submission and starts checkout.
// POST /api/save-config
func (h *Handler) SaveConfig(c *gin.Context) {
	var req transport.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "missing or invalid configuration fields", err.Error())
		return
	}

	resp, err := h.service.SaveConfiguration(c.Request.Context(), req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, resp)
}

// Status reports the lifecycle status of a configuration.
// GET /api/config/:id/status
func (h *Handler) Status(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetStatus(c.Request.Context(), id)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, resp)
}
