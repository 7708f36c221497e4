// Package transport defines request and response DTOs for the receptionist
// configuration endpoints.
package transport

// SaveConfigRequest carries the completed wizard state submitted by the
// storefront.
type SaveConfigRequest struct {
	Plan          string `json:"plan" validate:"required,max=50"`
	VoiceID       string `json:"voiceId" validate:"required,max=50"`
	Style         string `json:"style" validate:"required,max=50"`
	CustomStyle   string `json:"customStyle" validate:"max=500"`
	Language      string `json:"language" validate:"max=20"`
	BusinessName  string `json:"businessName" validate:"required,min=1,max=200"`
	Industry      string `json:"industry" validate:"required,min=1,max=100"`
	Hours         string `json:"hours" validate:"max=200"`
	Phone         string `json:"phone" validate:"max=50"`
	Services      string `json:"services" validate:"max=1000"`
	FAQs          string `json:"faqs" validate:"max=4000"`
	Country       string `json:"country" validate:"max=10"`
	Greeting      string `json:"greeting" validate:"max=1000"`
	Personality   string `json:"personality" validate:"max=2000"`
	Script        string `json:"script" validate:"max=10000"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
}

// SaveConfigResponse is returned from POST /api/save-config.
type SaveConfigResponse struct {
	Success     bool   `json:"success"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
	ConfigID    string `json:"configId,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ConfigStatusResponse is returned from GET /api/config/:id/status.
type ConfigStatusResponse struct {
	ConfigID    string `json:"configId"`
	Status      string `json:"status"`
	AssistantID string `json:"assistantId,omitempty"`
}
