// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"ringly_backend/platform/events"
	"ringly_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Receptionist Domain Events
// =============================================================================

// ReceptionistProvisioned is published when a configuration reaches the
// live status with a created voice assistant.
type ReceptionistProvisioned struct {
	BaseEvent
	ConfigID      string `json:"configId"`
	BusinessName  string `json:"businessName"`
	CustomerEmail string `json:"customerEmail"`
	AssistantID   string `json:"assistantId"`
}

func (e ReceptionistProvisioned) EventName() string { return "receptionist.provisioned" }

// SubscriptionCancelled is published when a payment processor notification
// reports the customer's subscription as deleted.
type SubscriptionCancelled struct {
	BaseEvent
	ConfigID       string `json:"configId"`
	SubscriptionID string `json:"subscriptionId"`
	CustomerEmail  string `json:"customerEmail"`
}

func (e SubscriptionCancelled) EventName() string { return "receptionist.subscription_cancelled" }
