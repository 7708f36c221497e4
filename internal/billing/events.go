package billing

import "encoding/json"

// Event is the envelope of a payment processor webhook delivery. Only the
// event type and raw object payload are read; the object is decoded per
// event type.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSession is the subset of the checkout session object this
// system reads from checkout.session.completed events.
type CheckoutSession struct {
	ID           string            `json:"id"`
	Customer     string            `json:"customer"`
	Subscription string            `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
}

// Subscription is the subset of the subscription object this system reads
// from customer.subscription.deleted events.
type Subscription struct {
	ID string `json:"id"`
}
