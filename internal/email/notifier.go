package email

import (
	"context"
	"fmt"

	"ringly_backend/internal/events"
	"ringly_backend/platform/logger"
)

// Notifier subscribes to receptionist lifecycle events and sends the
// matching notification email.
type Notifier struct {
	sender Sender
	log    *logger.Logger
}

// NewNotifier creates a notifier and registers it on the bus.
func NewNotifier(bus events.Bus, sender Sender, log *logger.Logger) *Notifier {
	n := &Notifier{sender: sender, log: log}
	bus.Subscribe("receptionist.provisioned", events.HandlerFunc(n.onProvisioned))
	bus.Subscribe("receptionist.subscription_cancelled", events.HandlerFunc(n.onCancelled))
	return n
}

func (n *Notifier) onProvisioned(ctx context.Context, event events.Event) error {
	e, ok := event.(events.ReceptionistProvisioned)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventName())
	}
	if e.CustomerEmail == "" {
		return nil
	}
	if err := n.sender.SendReceptionistLive(ctx, e.CustomerEmail, e.BusinessName); err != nil {
		return fmt.Errorf("send go-live email for %s: %w", e.ConfigID, err)
	}
	n.log.Info("go-live email sent", "config_id", e.ConfigID)
	return nil
}

func (n *Notifier) onCancelled(ctx context.Context, event events.Event) error {
	e, ok := event.(events.SubscriptionCancelled)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventName())
	}
	if e.CustomerEmail == "" {
		return nil
	}
	if err := n.sender.SendSubscriptionCancelled(ctx, e.CustomerEmail); err != nil {
		return fmt.Errorf("send cancellation email for %s: %w", e.ConfigID, err)
	}
	n.log.Info("cancellation email sent", "config_id", e.ConfigID)
	return nil
}
