package calls

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ringly_backend/platform/httpkit"
	"ringly_backend/platform/validator"
)

// CallMeRequest is the request body for the demo call endpoint.
type CallMeRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Phone   string `json:"phoneNumber" validate:"required,min=7,max=50"`
	Country string `json:"country" validate:"max=10"`
}

// Handler serves the demo call and voice preview endpoints.
type Handler struct {
	service *Service
	val     *validator.Validator
}

// NewHandler creates a calls handler.
func NewHandler(service *Service, val *validator.Validator) *Handler {
	return &Handler{service: service, val: val}
}

// CallMe triggers an outbound demo call.
// POST /api/call-me
func (h *Handler) CallMe(c *gin.Context) {
	var req CallMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "name and phone are required", err.Error())
		return
	}

	result, err := h.service.TriggerDemoCall(c.Request.Context(), req.Name, req.Phone, req.Country)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, result)
}

// VoicePreview streams an MP3 sample of a catalog voice.
// GET /api/voice-preview?voice=<id>
func (h *Handler) VoicePreview(c *gin.Context) {
	audio, err := h.service.VoicePreview(c.Request.Context(), c.Query("voice"))
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
