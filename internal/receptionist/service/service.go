// Package service implements the receptionist configuration workflows:
// saving a wizard submission with a checkout session, and provisioning a
// live assistant once payment completes.
package service

import (
	"context"
	"fmt"

	"ringly_backend/internal/adapters/stripecheckout"
	"ringly_backend/internal/catalog"
	"ringly_backend/internal/receptionist/repository"
	"ringly_backend/internal/receptionist/transport"
	"ringly_backend/platform/apperr"
	"ringly_backend/platform/config"
	"ringly_backend/platform/logger"
)

// CheckoutClient creates hosted checkout sessions.
type CheckoutClient interface {
	CreateSession(ctx context.Context, req stripecheckout.SessionRequest) (stripecheckout.Session, error)
}

// Service handles configuration submissions from the storefront wizard.
type Service struct {
	repo     repository.Repository
	checkout CheckoutClient
	cfg      config.CheckoutConfig
	log      *logger.Logger
}

// NewService creates the configuration service. checkout may be nil when no
// payment credential is configured; submissions are then saved without a
// checkout session.
func NewService(repo repository.Repository, checkout CheckoutClient, cfg config.CheckoutConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, checkout: checkout, cfg: cfg, log: log}
}

// SaveConfiguration validates a wizard submission, persists it as a draft,
// and returns a checkout URL for the selected plan.
func (s *Service) SaveConfiguration(ctx context.Context, req transport.SaveConfigRequest) (transport.SaveConfigResponse, error) {
	if err := s.validateSelections(req); err != nil {
		return transport.SaveConfigResponse{}, err
	}

	// Resolve the plan's price before touching anything external. An
	// unknown or unmapped plan is an operator configuration problem, not
	// an upstream one.
	var priceID string
	if s.checkout != nil {
		priceID = s.cfg.GetStripePriceID(req.Plan)
		if priceID == "" {
			return transport.SaveConfigResponse{}, apperr.BadRequest(
				fmt.Sprintf("no checkout price configured for plan: %s", req.Plan))
		}
	}

	configID, err := s.persistDraft(ctx, req)
	if err != nil {
		if apperr.Is(err, apperr.KindValidation) {
			return transport.SaveConfigResponse{}, err
		}
		// Store outage degrades the flow; checkout still proceeds and the
		// webhook carries enough metadata to reconcile later.
		s.log.DatabaseError("create_configuration", err)
		configID = ""
	}

	if s.checkout == nil {
		return transport.SaveConfigResponse{
			Success:  true,
			ConfigID: configID,
			Message:  "Configuration saved. Checkout is not configured on this deployment.",
		}, nil
	}

	base := s.cfg.GetAppBaseURL()
	metadata := map[string]string{
		"plan":          req.Plan,
		"business_name": req.BusinessName,
	}
	if configID != "" {
		metadata["config_id"] = configID
	}

	session, err := s.checkout.CreateSession(ctx, stripecheckout.SessionRequest{
		CustomerEmail: req.CustomerEmail,
		PriceID:       priceID,
		SuccessURL:    base + "/configure.html?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     base + "/configure.html?cancelled=true",
		Metadata:      metadata,
	})
	if err != nil {
		s.log.UpstreamError("stripe", "create_checkout_session", err)
		return transport.SaveConfigResponse{}, apperr.Wrap(apperr.KindInternal,
			"failed to create checkout session", err).WithDetails(err.Error())
	}

	if configID != "" {
		if err := s.repo.Update(ctx, configID, repository.ConfigurationUpdate{
			StripeSessionID: &session.ID,
		}); err != nil {
			// The session already exists; the webhook carries the config
			// id in metadata, so losing this linkage is recoverable.
			s.log.DatabaseError("attach_checkout_session", err)
		}
	}

	return transport.SaveConfigResponse{
		Success:     true,
		CheckoutURL: session.URL,
		ConfigID:    configID,
	}, nil
}

// validateSelections enforces the catalog rules server-side. The wizard UI
// hides locked items, but the API cannot trust it.
func (s *Service) validateSelections(req transport.SaveConfigRequest) error {
	if _, ok := catalog.PlanRank(req.Plan); !ok {
		return apperr.Validation(fmt.Sprintf("unknown plan: %s", req.Plan))
	}
	voice, ok := catalog.VoiceByID(req.VoiceID)
	if !ok {
		return apperr.Validation(fmt.Sprintf("unknown voice: %s", req.VoiceID))
	}
	if !catalog.Unlocked(voice.Tier, req.Plan) {
		return apperr.Validation(fmt.Sprintf("voice %s is not available on the %s plan", req.VoiceID, req.Plan))
	}
	style, ok := catalog.StyleByID(req.Style)
	if !ok {
		return apperr.Validation(fmt.Sprintf("unknown style: %s", req.Style))
	}
	if !catalog.Unlocked(style.Tier, req.Plan) {
		return apperr.Validation(fmt.Sprintf("style %s is not available on the %s plan", req.Style, req.Plan))
	}
	return nil
}

// persistDraft writes the submission as a draft configuration.
func (s *Service) persistDraft(ctx context.Context, req transport.SaveConfigRequest) (string, error) {
	return s.repo.Create(ctx, repository.NewConfiguration{
		Plan:          req.Plan,
		VoiceID:       req.VoiceID,
		Style:         req.Style,
		CustomStyle:   optional(req.CustomStyle),
		Language:      defaultStr(req.Language, "en"),
		BusinessName:  req.BusinessName,
		Industry:      req.Industry,
		Hours:         optional(req.Hours),
		Phone:         optional(req.Phone),
		Services:      req.Services,
		FAQs:          optional(req.FAQs),
		Country:       defaultStr(req.Country, "US"),
		Greeting:      optional(req.Greeting),
		Personality:   optional(req.Personality),
		Script:        optional(req.Script),
		CustomerEmail: req.CustomerEmail,
	})
}

// GetStatus returns the lifecycle status of a configuration.
func (s *Service) GetStatus(ctx context.Context, id string) (transport.ConfigStatusResponse, error) {
	cfg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.ConfigStatusResponse{}, err
	}
	resp := transport.ConfigStatusResponse{
		ConfigID: cfg.ID,
		Status:   string(cfg.Status),
	}
	if cfg.AssistantID != nil {
		resp.AssistantID = *cfg.AssistantID
	}
	return resp, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
