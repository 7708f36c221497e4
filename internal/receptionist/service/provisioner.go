package service

import (
	"context"
	"fmt"

	"ringly_backend/internal/adapters/vapi"
	"ringly_backend/internal/catalog"
	"ringly_backend/internal/events"
	"ringly_backend/internal/receptionist/repository"
	"ringly_backend/platform/logger"
)

// AssistantClient creates live voice assistants on the telephony platform.
type AssistantClient interface {
	CreateAssistant(ctx context.Context, req vapi.AssistantRequest) (vapi.Assistant, error)
}

// Provisioner drives a paid configuration to a live assistant. It is invoked
// from payment webhooks, which may be delivered more than once, so every
// step checks the stored status before acting.
type Provisioner struct {
	repo       repository.Repository
	assistants AssistantClient
	bus        events.Bus
	log        *logger.Logger
}

// NewProvisioner creates the provisioning orchestrator. assistants may be
// nil when no telephony credential is configured; paid configurations then
// stay in the paid status until an operator intervenes.
func NewProvisioner(repo repository.Repository, assistants AssistantClient, bus events.Bus, log *logger.Logger) *Provisioner {
	return &Provisioner{repo: repo, assistants: assistants, bus: bus, log: log}
}

// HandleCheckoutCompleted records the payment and provisions the assistant.
// Duplicate deliveries for a configuration that is already provisioning or
// live are logged and ignored.
func (p *Provisioner) HandleCheckoutCompleted(ctx context.Context, configID, customerID, subscriptionID string) error {
	cfg, err := p.repo.GetByID(ctx, configID)
	if err != nil {
		return fmt.Errorf("load configuration %s: %w", configID, err)
	}

	switch cfg.Status {
	case repository.StatusProvisioning, repository.StatusLive:
		p.log.WebhookEvent("checkout.session.completed", configID, true, "")
		p.log.Info("duplicate checkout notification ignored",
			"config_id", configID, "status", string(cfg.Status))
		return nil
	case repository.StatusFailed:
		// Failed provisioning is retried by an operator, never by a
		// redelivered webhook.
		p.log.WebhookEvent("checkout.session.completed", configID, true, "")
		p.log.Warn("checkout notification for failed configuration ignored",
			"config_id", configID)
		return nil
	case repository.StatusCancelled:
		p.log.Warn("checkout completed for cancelled configuration",
			"config_id", configID)
		return nil
	}

	if cfg.Status == repository.StatusDraft {
		paid := repository.StatusPaid
		upd := repository.ConfigurationUpdate{Status: &paid}
		if customerID != "" {
			upd.StripeCustomerID = &customerID
		}
		if subscriptionID != "" {
			upd.StripeSubscriptionID = &subscriptionID
		}
		if err := p.repo.Update(ctx, configID, upd); err != nil {
			return fmt.Errorf("mark configuration %s paid: %w", configID, err)
		}
		p.log.ProvisioningEvent(configID, string(repository.StatusDraft), string(repository.StatusPaid))
	}

	if p.assistants == nil {
		p.log.Warn("telephony credential not configured, provisioning skipped",
			"config_id", configID)
		return nil
	}

	return p.provision(ctx, cfg)
}

func (p *Provisioner) provision(ctx context.Context, cfg repository.Configuration) error {
	provisioning := repository.StatusProvisioning
	if err := p.repo.Update(ctx, cfg.ID, repository.ConfigurationUpdate{Status: &provisioning}); err != nil {
		return fmt.Errorf("mark configuration %s provisioning: %w", cfg.ID, err)
	}
	p.log.ProvisioningEvent(cfg.ID, string(repository.StatusPaid), string(repository.StatusProvisioning))

	engineVoiceID, mapped := catalog.EngineVoice(cfg.VoiceID)
	if !mapped {
		p.log.Warn("stored voice has no engine mapping, using default",
			"config_id", cfg.ID, "voice_id", cfg.VoiceID, "default", catalog.DefaultVoiceID)
	}

	assistant, err := p.assistants.CreateAssistant(ctx, assistantRequest(cfg, engineVoiceID))
	if err != nil {
		p.log.UpstreamError("vapi", "create_assistant", err)
		failed := repository.StatusFailed
		if updErr := p.repo.Update(ctx, cfg.ID, repository.ConfigurationUpdate{Status: &failed}); updErr != nil {
			p.log.DatabaseError("mark_configuration_failed", updErr)
		}
		p.log.ProvisioningEvent(cfg.ID, string(repository.StatusProvisioning), string(repository.StatusFailed))
		return fmt.Errorf("create assistant for configuration %s: %w", cfg.ID, err)
	}

	live := repository.StatusLive
	if err := p.repo.Update(ctx, cfg.ID, repository.ConfigurationUpdate{
		Status:      &live,
		AssistantID: &assistant.ID,
	}); err != nil {
		// The assistant exists; losing the linkage is worse than a
		// duplicate webhook, so surface the error.
		return fmt.Errorf("mark configuration %s live: %w", cfg.ID, err)
	}
	p.log.ProvisioningEvent(cfg.ID, string(repository.StatusProvisioning), string(repository.StatusLive))

	p.bus.Publish(ctx, events.ReceptionistProvisioned{
		BaseEvent:     events.NewBaseEvent(),
		ConfigID:      cfg.ID,
		BusinessName:  cfg.BusinessName,
		CustomerEmail: cfg.CustomerEmail,
		AssistantID:   assistant.ID,
	})
	return nil
}

// HandleSubscriptionDeleted marks the configuration bound to the cancelled
// subscription as cancelled, whatever state it is in.
func (p *Provisioner) HandleSubscriptionDeleted(ctx context.Context, subscriptionID string) error {
	cfg, err := p.repo.GetBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("load configuration for subscription %s: %w", subscriptionID, err)
	}
	if cfg.Status == repository.StatusCancelled {
		return nil
	}

	cancelled := repository.StatusCancelled
	if err := p.repo.Update(ctx, cfg.ID, repository.ConfigurationUpdate{Status: &cancelled}); err != nil {
		return fmt.Errorf("mark configuration %s cancelled: %w", cfg.ID, err)
	}
	p.log.ProvisioningEvent(cfg.ID, string(cfg.Status), string(repository.StatusCancelled))

	p.bus.Publish(ctx, events.SubscriptionCancelled{
		BaseEvent:      events.NewBaseEvent(),
		ConfigID:       cfg.ID,
		SubscriptionID: subscriptionID,
		CustomerEmail:  cfg.CustomerEmail,
	})
	return nil
}

func assistantRequest(cfg repository.Configuration, engineVoiceID string) vapi.AssistantRequest {
	greeting := fmt.Sprintf("Thank you for calling %s! How can I help you today?", cfg.BusinessName)
	if cfg.Greeting != nil && *cfg.Greeting != "" {
		greeting = *cfg.Greeting
	}
	script := fmt.Sprintf("You are the AI receptionist for %s.", cfg.BusinessName)
	if cfg.Script != nil && *cfg.Script != "" {
		script = *cfg.Script
	}

	return vapi.AssistantRequest{
		Name:         fmt.Sprintf("%s Receptionist", cfg.BusinessName),
		FirstMessage: greeting,
		Model: vapi.Model{
			Provider: "openai",
			Model:    "gpt-4o-mini",
			Messages: []vapi.ModelMessage{{Role: "system", Content: script}},
		},
		Voice: vapi.Voice{
			Provider:        "11labs",
			VoiceID:         engineVoiceID,
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
		MaxDurationSeconds:    600,
		EndCallMessage:        "Thank you for calling! Have a great day.",
		SilenceTimeoutSeconds: 30,
	}
}
