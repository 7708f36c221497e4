package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ringly_backend/internal/adapters/stripecheckout"
	"ringly_backend/internal/adapters/vapi"
	"ringly_backend/internal/receptionist/repository"
	"ringly_backend/internal/receptionist/transport"
	"ringly_backend/platform/apperr"
	"ringly_backend/platform/events"
	"ringly_backend/platform/logger"
)

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	configs   map[string]*repository.Configuration
	nextID    int
	createErr error
	updateErr error
	creates   int
	updates   int
}

func newMemRepo() *memRepo {
	return &memRepo{configs: map[string]*repository.Configuration{}}
}

func (m *memRepo) Create(_ context.Context, cfg repository.NewConfiguration) (string, error) {
	m.creates++
	if m.createErr != nil {
		return "", m.createErr
	}
	// Mirror the store's required-at-creation contract.
	if cfg.Industry == "" {
		return "", apperr.Validation("industry is required")
	}
	if cfg.Services == "" {
		return "", apperr.Validation("services is required")
	}
	m.nextID++
	id := fmt.Sprintf("cfg_%d", m.nextID)
	m.configs[id] = &repository.Configuration{
		ID:            id,
		Status:        repository.StatusDraft,
		Plan:          cfg.Plan,
		VoiceID:       cfg.VoiceID,
		Style:         cfg.Style,
		Language:      cfg.Language,
		BusinessName:  cfg.BusinessName,
		Industry:      cfg.Industry,
		Services:      cfg.Services,
		Country:       cfg.Country,
		Greeting:      cfg.Greeting,
		Script:        cfg.Script,
		CustomerEmail: cfg.CustomerEmail,
	}
	return id, nil
}

func (m *memRepo) Update(_ context.Context, id string, upd repository.ConfigurationUpdate) error {
	m.updates++
	if m.updateErr != nil {
		return m.updateErr
	}
	cfg, ok := m.configs[id]
	if !ok {
		return apperr.NotFound("configuration not found")
	}
	if upd.Status != nil {
		cfg.Status = *upd.Status
	}
	if upd.StripeSessionID != nil {
		cfg.StripeSessionID = upd.StripeSessionID
	}
	if upd.StripeCustomerID != nil {
		cfg.StripeCustomerID = upd.StripeCustomerID
	}
	if upd.StripeSubscriptionID != nil {
		cfg.StripeSubscriptionID = upd.StripeSubscriptionID
	}
	if upd.AssistantID != nil {
		cfg.AssistantID = upd.AssistantID
	}
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (repository.Configuration, error) {
	cfg, ok := m.configs[id]
	if !ok {
		return repository.Configuration{}, apperr.NotFound("configuration not found")
	}
	return *cfg, nil
}

func (m *memRepo) GetBySubscriptionID(_ context.Context, subscriptionID string) (repository.Configuration, error) {
	for _, cfg := range m.configs {
		if cfg.StripeSubscriptionID != nil && *cfg.StripeSubscriptionID == subscriptionID {
			return *cfg, nil
		}
	}
	return repository.Configuration{}, apperr.NotFound("configuration not found")
}

type fakeCheckout struct {
	calls   int
	lastReq stripecheckout.SessionRequest
	err     error
}

func (f *fakeCheckout) CreateSession(_ context.Context, req stripecheckout.SessionRequest) (stripecheckout.Session, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return stripecheckout.Session{}, f.err
	}
	return stripecheckout.Session{ID: "cs_test", URL: "https://checkout.example/cs_test"}, nil
}

type checkoutCfg struct {
	prices map[string]string
}

func (c checkoutCfg) GetStripeSecretKey() string     { return "sk_test" }
func (c checkoutCfg) GetStripeWebhookSecret() string { return "whsec_test" }
func (c checkoutCfg) GetAppBaseURL() string          { return "https://app.example" }
func (c checkoutCfg) GetStripePriceID(plan string) string {
	return c.prices[plan]
}

type fakeAssistants struct {
	calls   int
	lastReq vapi.AssistantRequest
	err     error
}

func (f *fakeAssistants) CreateAssistant(_ context.Context, req vapi.AssistantRequest) (vapi.Assistant, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return vapi.Assistant{}, f.err
	}
	return vapi.Assistant{ID: fmt.Sprintf("asst_%d", f.calls)}, nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func testLogger() *logger.Logger { return logger.New("test") }

func validRequest() transport.SaveConfigRequest {
	return transport.SaveConfigRequest{
		Plan:          "growth",
		VoiceID:       "alex",
		Style:         "friendly",
		BusinessName:  "Bright Smile Dental",
		Industry:      "dental",
		Services:      "cleaning, whitening",
		CustomerEmail: "owner@brightsmile.example",
	}
}

func TestSaveConfiguration_ReturnsCheckoutURL(t *testing.T) {
	repo := newMemRepo()
	checkout := &fakeCheckout{}
	svc := NewService(repo, checkout, checkoutCfg{prices: map[string]string{"growth": "price_growth"}}, testLogger())

	resp, err := svc.SaveConfiguration(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success response")
	}
	if resp.CheckoutURL != "https://checkout.example/cs_test" {
		t.Fatalf("expected checkout URL, got %q", resp.CheckoutURL)
	}
	if resp.ConfigID == "" {
		t.Fatalf("expected a config id")
	}
	if checkout.lastReq.PriceID != "price_growth" {
		t.Fatalf("expected growth price, got %q", checkout.lastReq.PriceID)
	}
	if checkout.lastReq.Metadata["config_id"] != resp.ConfigID {
		t.Fatalf("expected config id in session metadata")
	}
	if checkout.lastReq.SuccessURL != "https://app.example/configure.html?success=true&session_id={CHECKOUT_SESSION_ID}" {
		t.Fatalf("unexpected success URL %q", checkout.lastReq.SuccessURL)
	}

	stored := repo.configs[resp.ConfigID]
	if stored.Status != repository.StatusDraft {
		t.Fatalf("expected draft status, got %s", stored.Status)
	}
	if stored.StripeSessionID == nil || *stored.StripeSessionID != "cs_test" {
		t.Fatalf("expected session id attached to configuration")
	}
}

func TestSaveConfiguration_UnknownPlanFailsBeforeCheckout(t *testing.T) {
	repo := newMemRepo()
	checkout := &fakeCheckout{}
	svc := NewService(repo, checkout, checkoutCfg{prices: map[string]string{"growth": "price_growth"}}, testLogger())

	req := validRequest()
	req.Plan = "gold"

	_, err := svc.SaveConfiguration(context.Background(), req)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for unknown plan, got %v", err)
	}
	if checkout.calls != 0 {
		t.Fatalf("checkout must not be called for an unknown plan")
	}
	if repo.creates != 0 {
		t.Fatalf("nothing should be persisted for an unknown plan")
	}
}

func TestSaveConfiguration_UnmappedPriceFailsBeforeCheckout(t *testing.T) {
	repo := newMemRepo()
	checkout := &fakeCheckout{}
	svc := NewService(repo, checkout, checkoutCfg{prices: map[string]string{"growth": "price_growth"}}, testLogger())

	req := validRequest()
	req.Plan = "starter" // known plan, no mapped price

	_, err := svc.SaveConfiguration(context.Background(), req)
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request for unmapped price, got %v", err)
	}
	if checkout.calls != 0 {
		t.Fatalf("checkout must not be called without a price")
	}
}

func TestSaveConfiguration_MissingIndustryRejected(t *testing.T) {
	repo := newMemRepo()
	checkout := &fakeCheckout{}
	svc := NewService(repo, checkout, checkoutCfg{prices: map[string]string{"growth": "price_growth"}}, testLogger())

	req := validRequest()
	req.Industry = ""

	_, err := svc.SaveConfiguration(context.Background(), req)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for missing industry, got %v", err)
	}
	if checkout.calls != 0 {
		t.Fatalf("checkout must not run for an incomplete configuration")
	}
	if len(repo.configs) != 0 {
		t.Fatalf("incomplete configuration must not be persisted")
	}
}

func TestSaveConfiguration_MissingServicesRejected(t *testing.T) {
	repo := newMemRepo()
	checkout := &fakeCheckout{}
	svc := NewService(repo, checkout, checkoutCfg{prices: map[string]string{"growth": "price_growth"}}, testLogger())

	req := validRequest()
	req.Services = ""

	_, err := svc.SaveConfiguration(context.Background(), req)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for missing services, got %v", err)
	}
	if checkout.calls != 0 {
		t.Fatalf("checkout must not run for an incomplete configuration")
	}
}

func TestSaveConfiguration_LockedVoiceRejected(t *testing.T) {
	svc := NewService(newMemRepo(), &fakeCheckout{}, checkoutCfg{prices: map[string]string{"starter": "price_starter"}}, testLogger())

	req := validRequest()
	req.Plan = "starter"
	req.VoiceID = "maya" // growth tier voice

	_, err := svc.SaveConfiguration(context.Background(), req)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for locked voice, got %v", err)
	}
}

func TestSaveConfiguration_StoreFailureStillReachesCheckout(t *testing.T) {
	repo := newMemRepo()
	repo.createErr = apperr.Wrap(apperr.KindUnavailable, "configuration store unavailable", errors.New("connection refused"))
	checkout := &fakeCheckout{}
	svc := NewService(repo, checkout, checkoutCfg{prices: map[string]string{"growth": "price_growth"}}, testLogger())

	resp, err := svc.SaveConfiguration(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("store failure must not block checkout: %v", err)
	}
	if resp.CheckoutURL == "" {
		t.Fatalf("expected checkout URL despite store failure")
	}
	if resp.ConfigID != "" {
		t.Fatalf("no config id should be reported when the draft was not stored")
	}
	if _, ok := checkout.lastReq.Metadata["config_id"]; ok {
		t.Fatalf("session metadata must not carry a config id that does not exist")
	}
}

func TestSaveConfiguration_WithoutCheckoutCredential(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil, checkoutCfg{}, testLogger())

	resp, err := svc.SaveConfiguration(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.CheckoutURL != "" {
		t.Fatalf("expected saved-without-checkout response, got %+v", resp)
	}
	if resp.Message == "" {
		t.Fatalf("expected an explanatory message")
	}
	if repo.creates != 1 {
		t.Fatalf("draft must still be persisted")
	}
}

func TestGetStatus(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil, checkoutCfg{}, testLogger())

	resp, err := svc.SaveConfiguration(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := svc.GetStatus(context.Background(), resp.ConfigID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != string(repository.StatusDraft) {
		t.Fatalf("expected draft, got %s", status.Status)
	}

	if _, err := svc.GetStatus(context.Background(), "missing"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
