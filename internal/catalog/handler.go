package catalog

import (
	"net/http"

	"ringly_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// VoiceResponse is a catalog voice with its lock state for a plan.
type VoiceResponse struct {
	Voice
	Locked bool `json:"locked"`
}

// StyleResponse is a catalog style with its lock state for a plan.
type StyleResponse struct {
	Style
	Locked bool `json:"locked"`
}

// Handler serves the static catalog endpoints.
type Handler struct{}

// NewHandler creates a catalog handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ListPlans returns all plan tiers.
// GET /api/catalog/plans
func (h *Handler) ListPlans(c *gin.Context) {
	httpkit.JSON(c, http.StatusOK, gin.H{"plans": Plans()})
}

// ListVoices returns all voices. An optional ?plan= query adds per-item
// lock state so the wizard renders from the tier rule the server enforces.
// GET /api/catalog/voices
func (h *Handler) ListVoices(c *gin.Context) {
	plan := c.Query("plan")

	out := make([]VoiceResponse, 0, len(Voices()))
	for _, v := range Voices() {
		locked := plan != "" && !Unlocked(v.Tier, plan)
		out = append(out, VoiceResponse{Voice: v, Locked: locked})
	}
	httpkit.JSON(c, http.StatusOK, gin.H{"voices": out})
}

// ListStyles returns all styles with optional lock state, as ListVoices.
// GET /api/catalog/styles
func (h *Handler) ListStyles(c *gin.Context) {
	plan := c.Query("plan")

	out := make([]StyleResponse, 0, len(Styles()))
	for _, s := range Styles() {
		locked := plan != "" && !Unlocked(s.Tier, plan)
		out = append(out, StyleResponse{Style: s, Locked: locked})
	}
	httpkit.JSON(c, http.StatusOK, gin.H{"styles": out})
}
