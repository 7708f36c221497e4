package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"ringly_backend/platform/logger"
)

// Provisioner is the downstream workflow the webhook dispatches into.
type Provisioner interface {
	HandleCheckoutCompleted(ctx context.Context, configID, customerID, subscriptionID string) error
	HandleSubscriptionDeleted(ctx context.Context, subscriptionID string) error
}

// Service dispatches verified webhook events to the provisioner. Processing
// errors are returned for logging; the HTTP layer acknowledges the delivery
// regardless, so the processor does not retry events that failed on our side
// of the fence.
type Service struct {
	provisioner Provisioner
	log         *logger.Logger
}

// NewService creates the webhook dispatch service.
func NewService(provisioner Provisioner, log *logger.Logger) *Service {
	return &Service{provisioner: provisioner, log: log}
}

// Process handles a single verified event. Unrecognized event types are
// logged and ignored.
func (s *Service) Process(ctx context.Context, event Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		s.log.Debug("ignoring webhook event", "type", event.Type)
		return nil
	}
}

func (s *Service) handleCheckoutCompleted(ctx context.Context, event Event) error {
	var session CheckoutSession
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	configID := session.Metadata["config_id"]
	if configID == "" {
		s.log.WebhookEvent(event.Type, "", false, "missing config_id metadata")
		return nil
	}

	if err := s.provisioner.HandleCheckoutCompleted(ctx, configID, session.Customer, session.Subscription); err != nil {
		s.log.WebhookEvent(event.Type, configID, false, err.Error())
		return err
	}
	s.log.WebhookEvent(event.Type, configID, true, "")
	return nil
}

func (s *Service) handleSubscriptionDeleted(ctx context.Context, event Event) error {
	var sub Subscription
	if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
		return fmt.Errorf("decode subscription: %w", err)
	}
	if sub.ID == "" {
		s.log.WebhookEvent(event.Type, "", false, "missing subscription id")
		return nil
	}

	if err := s.provisioner.HandleSubscriptionDeleted(ctx, sub.ID); err != nil {
		s.log.WebhookEvent(event.Type, "", false, err.Error())
		return err
	}
	s.log.WebhookEvent(event.Type, "", true, "")
	return nil
}
