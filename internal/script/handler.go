package script

import (
	"net/http"

	"ringly_backend/platform/httpkit"
	"ringly_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// GenerateRequest is the request body for script generation.
type GenerateRequest struct {
	BusinessName string `json:"businessName" validate:"required,min=1,max=200"`
	Industry     string `json:"industry" validate:"required,min=1,max=100"`
	Hours        string `json:"hours" validate:"max=200"`
	Phone        string `json:"phone" validate:"max=50"`
	Services     string `json:"services" validate:"required,min=1,max=1000"`
	FAQs         string `json:"faqs" validate:"max=4000"`
	VoiceName    string `json:"voiceName" validate:"max=100"`
	Style        string `json:"style" validate:"max=200"`
}

// Handler serves the script generation endpoint.
type Handler struct {
	generator *Generator
	val       *validator.Validator
}

// NewHandler creates a script handler.
func NewHandler(generator *Generator, val *validator.Validator) *Handler {
	return &Handler{generator: generator, val: val}
}

// Generate produces the three script artifacts for a business profile.
// POST /api/generate-script
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "business name, industry, and services are required", err.Error())
		return
	}

	result := h.generator.Generate(c.Request.Context(), Profile{
		BusinessName: req.BusinessName,
		Industry:     req.Industry,
		Hours:        req.Hours,
		Phone:        req.Phone,
		Services:     req.Services,
		FAQs:         req.FAQs,
		VoiceName:    req.VoiceName,
		Style:        req.Style,
	})

	httpkit.OK(c, result)
}
