package billing

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

const testSecret = "whsec_test_secret"

func TestVerifySignature_ValidSignature(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)
	now := time.Unix(1700000000, 0)
	header := SignPayload(payload, testSecret, now)

	if err := VerifySignature(payload, header, testSecret, now); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}
}

func TestVerifySignature_TamperedPayload(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)
	now := time.Unix(1700000000, 0)
	header := SignPayload(payload, testSecret, now)

	tampered := []byte(`{"type":"checkout.session.completed","data":{}}`)
	if err := VerifySignature(tampered, header, testSecret, now); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Unix(1700000000, 0)
	header := SignPayload(payload, "whsec_other", now)

	if err := VerifySignature(payload, header, testSecret, now); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
}

func TestVerifySignature_TimestampTolerance(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Unix(1700000000, 0)

	cases := []struct {
		name     string
		signedAt time.Time
		wantErr  error
	}{
		{"exactly at tolerance past", now.Add(-300 * time.Second), nil},
		{"exactly at tolerance future", now.Add(300 * time.Second), nil},
		{"just inside tolerance", now.Add(-299 * time.Second), nil},
		{"past beyond tolerance", now.Add(-301 * time.Second), ErrStaleTimestamp},
		{"future beyond tolerance", now.Add(301 * time.Second), ErrStaleTimestamp},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := SignPayload(payload, testSecret, tc.signedAt)
			err := VerifySignature(payload, header, testSecret, now)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestVerifySignature_MalformedHeaders(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Unix(1700000000, 0)

	headers := []string{
		"",
		"garbage",
		"t=not-a-number,v1=abcd",
		"v1=abcd",
		fmt.Sprintf("t=%d", now.Unix()),
	}

	for _, header := range headers {
		if err := VerifySignature(payload, header, testSecret, now); !errors.Is(err, ErrMalformedHeader) {
			t.Fatalf("header %q: expected ErrMalformedHeader, got %v", header, err)
		}
	}
}

func TestVerifySignature_MultipleCandidates(t *testing.T) {
	payload := []byte(`{"id":"evt_2"}`)
	now := time.Unix(1700000000, 0)
	valid := SignPayload(payload, testSecret, now)

	// A stale v1 alongside the valid one still verifies.
	header := fmt.Sprintf("t=%d,v1=deadbeef,%s", now.Unix(), valid[len(fmt.Sprintf("t=%d,", now.Unix())):])
	if err := VerifySignature(payload, header, testSecret, now); err != nil {
		t.Fatalf("expected valid signature with extra candidate, got %v", err)
	}
}
