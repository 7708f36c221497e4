package repository

// Status tracks a receptionist configuration through its lifecycle.
type Status string

const (
	StatusDraft        Status = "draft"
	StatusPaid         Status = "paid"
	StatusProvisioning Status = "provisioning"
	StatusLive         Status = "live"
	StatusFailed       Status = "failed"
	StatusCancelled    Status = "cancelled"
)

// Configuration is a fully persisted receptionist configuration.
type Configuration struct {
	ID                   string
	Status               Status
	Plan                 string
	VoiceID              string
	Style                string
	CustomStyle          *string
	Language             string
	BusinessName         string
	Industry             string
	Hours                *string
	Phone                *string
	Services             string
	FAQs                 *string
	Country              string
	Greeting             *string
	Personality          *string
	Script               *string
	CustomerEmail        string
	StripeSessionID      *string
	StripeCustomerID     *string
	StripeSubscriptionID *string
	AssistantID          *string
	CreatedAt            string
	UpdatedAt            string
}

// NewConfiguration carries the fields accepted when a configuration is
// first written. The repository assigns the ID and the draft status.
type NewConfiguration struct {
	Plan          string
	VoiceID       string
	Style         string
	CustomStyle   *string
	Language      string
	BusinessName  string
	Industry      string
	Hours         *string
	Phone         *string
	Services      string
	FAQs          *string
	Country       string
	Greeting      *string
	Personality   *string
	Script        *string
	CustomerEmail string
}

// ConfigurationUpdate is a partial update. Nil fields are left untouched.
type ConfigurationUpdate struct {
	Status               *Status
	StripeSessionID      *string
	StripeCustomerID     *string
	StripeSubscriptionID *string
	AssistantID          *string
}
