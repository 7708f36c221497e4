package repository

import "context"

// Repository persists receptionist configurations.
type Repository interface {
	// Create stores a new configuration in draft status and returns its ID.
	Create(ctx context.Context, cfg NewConfiguration) (string, error)

	// Update applies a partial update to the configuration with the given ID.
	Update(ctx context.Context, id string, upd ConfigurationUpdate) error

	// GetByID fetches a configuration by its ID.
	GetByID(ctx context.Context, id string) (Configuration, error)

	// GetBySubscriptionID fetches the configuration bound to a Stripe
	// subscription.
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (Configuration, error)
}
