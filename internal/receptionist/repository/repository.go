package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ringly_backend/platform/apperr"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed configuration repository.
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

const configColumns = `id, status, plan, voice_id, style, custom_style, language,
	business_name, industry, hours, phone, services, faqs, country,
	greeting, personality, script, customer_email,
	stripe_session_id, stripe_customer_id, stripe_subscription_id, assistant_id,
	created_at::text, updated_at::text`

func (r *postgresRepository) Create(ctx context.Context, cfg NewConfiguration) (string, error) {
	if err := validateNew(cfg); err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `
		INSERT INTO receptionist_configs (
			id, status, plan, voice_id, style, custom_style, language,
			business_name, industry, hours, phone, services, faqs, country,
			greeting, personality, script, customer_email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.Exec(ctx, query,
		id, StatusDraft, cfg.Plan, cfg.VoiceID, cfg.Style, cfg.CustomStyle, cfg.Language,
		cfg.BusinessName, cfg.Industry, cfg.Hours, cfg.Phone, cfg.Services, cfg.FAQs, cfg.Country,
		cfg.Greeting, cfg.Personality, cfg.Script, cfg.CustomerEmail,
	)
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnavailable, "configuration store unavailable", err)
	}
	return id, nil
}

func validateNew(cfg NewConfiguration) error {
	switch {
	case strings.TrimSpace(cfg.Plan) == "":
		return apperr.Validation("plan is required")
	case strings.TrimSpace(cfg.VoiceID) == "":
		return apperr.Validation("voice is required")
	case strings.TrimSpace(cfg.Style) == "":
		return apperr.Validation("style is required")
	case strings.TrimSpace(cfg.BusinessName) == "":
		return apperr.Validation("business name is required")
	case strings.TrimSpace(cfg.Industry) == "":
		return apperr.Validation("industry is required")
	case strings.TrimSpace(cfg.Services) == "":
		return apperr.Validation("services is required")
	case strings.TrimSpace(cfg.CustomerEmail) == "":
		return apperr.Validation("customer email is required")
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, upd ConfigurationUpdate) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.StripeSessionID != nil {
		add("stripe_session_id", *upd.StripeSessionID)
	}
	if upd.StripeCustomerID != nil {
		add("stripe_customer_id", *upd.StripeCustomerID)
	}
	if upd.StripeSubscriptionID != nil {
		add("stripe_subscription_id", *upd.StripeSubscriptionID)
	}
	if upd.AssistantID != nil {
		add("assistant_id", *upd.AssistantID)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE receptionist_configs SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "configuration store unavailable", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Sprintf("configuration not found: %s", id))
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (Configuration, error) {
	query := fmt.Sprintf("SELECT %s FROM receptionist_configs WHERE id = $1", configColumns)
	return r.getOne(ctx, query, id)
}

func (r *postgresRepository) GetBySubscriptionID(ctx context.Context, subscriptionID string) (Configuration, error) {
	query := fmt.Sprintf("SELECT %s FROM receptionist_configs WHERE stripe_subscription_id = $1", configColumns)
	return r.getOne(ctx, query, subscriptionID)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg any) (Configuration, error) {
	var cfg Configuration
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&cfg.ID, &cfg.Status, &cfg.Plan, &cfg.VoiceID, &cfg.Style, &cfg.CustomStyle, &cfg.Language,
		&cfg.BusinessName, &cfg.Industry, &cfg.Hours, &cfg.Phone, &cfg.Services, &cfg.FAQs, &cfg.Country,
		&cfg.Greeting, &cfg.Personality, &cfg.Script, &cfg.CustomerEmail,
		&cfg.StripeSessionID, &cfg.StripeCustomerID, &cfg.StripeSubscriptionID, &cfg.AssistantID,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Configuration{}, apperr.NotFound("configuration not found")
		}
		return Configuration{}, apperr.Wrap(apperr.KindUnavailable, "configuration store unavailable", err)
	}
	return cfg, nil
}
