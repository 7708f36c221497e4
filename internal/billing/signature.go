// Package billing receives and verifies payment processor webhooks and
// dispatches them to the provisioning workflow.
package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureTolerance bounds how far a signed timestamp may drift from the
// server clock, in either direction.
const SignatureTolerance = 300 * time.Second

var (
	// ErrMalformedHeader means the signature header could not be parsed.
	ErrMalformedHeader = errors.New("malformed signature header")
	// ErrStaleTimestamp means the signed timestamp is outside the tolerance.
	ErrStaleTimestamp = errors.New("signature timestamp outside tolerance")
	// ErrSignatureMismatch means no candidate signature matched the payload.
	ErrSignatureMismatch = errors.New("signature mismatch")
)

// VerifySignature checks a Stripe-style webhook signature header against the
// raw request payload. The header has the form "t=<unix>,v1=<hex>" and the
// signed message is "<t>.<payload>".
func VerifySignature(payload []byte, header, secret string, now time.Time) error {
	timestamp, candidates, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	drift := now.Unix() - timestamp
	if drift < 0 {
		drift = -drift
	}
	if drift > int64(SignatureTolerance.Seconds()) {
		return ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, candidate := range candidates {
		decoded, err := hex.DecodeString(candidate)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}
	return ErrSignatureMismatch
}

// parseSignatureHeader extracts the timestamp and all v1 signatures from a
// "t=...,v1=...,v1=..." header.
func parseSignatureHeader(header string) (int64, []string, error) {
	var (
		timestamp  int64
		candidates []string
		sawT       bool
	)

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, ErrMalformedHeader
			}
			timestamp = parsed
			sawT = true
		case "v1":
			candidates = append(candidates, value)
		}
	}

	if !sawT || len(candidates) == 0 {
		return 0, nil, ErrMalformedHeader
	}
	return timestamp, candidates, nil
}

// SignPayload produces a valid signature header for the payload. Used by
// tests and local tooling to simulate processor deliveries.
func SignPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}
