// Package calls provides the public demo experience: an outbound call from
// the demo receptionist and short voice preview clips.
package calls

import (
	"context"
	"fmt"

	"ringly_backend/internal/adapters/vapi"
	"ringly_backend/internal/catalog"
	"ringly_backend/platform/apperr"
	"ringly_backend/platform/config"
	"ringly_backend/platform/logger"
	"ringly_backend/platform/phone"
)

// CallClient starts outbound calls on the telephony platform.
type CallClient interface {
	CreateCall(ctx context.Context, req vapi.CallRequest) (vapi.Call, error)
}

// Synthesizer produces preview audio for a voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, engineVoiceID, text string) ([]byte, error)
}

// Service implements the demo call and voice preview operations.
type Service struct {
	calls CallClient
	tts   Synthesizer
	cache *PreviewCache
	cfg   config.VapiConfig
	log   *logger.Logger
}

// NewService creates the calls service. calls and tts may be nil when the
// corresponding credentials are absent; the operations then report the
// feature as unavailable.
func NewService(calls CallClient, tts Synthesizer, cache *PreviewCache, cfg config.VapiConfig, log *logger.Logger) *Service {
	return &Service{calls: calls, tts: tts, cache: cache, cfg: cfg, log: log}
}

// CallResult is returned from a successful demo call trigger.
type CallResult struct {
	Success bool   `json:"success"`
	CallID  string `json:"callId"`
	Message string `json:"message"`
}

// TriggerDemoCall places an outbound call from the demo receptionist to the
// visitor's phone number.
func (s *Service) TriggerDemoCall(ctx context.Context, name, phoneNumber, country string) (CallResult, error) {
	if s.calls == nil {
		return CallResult{}, apperr.Unavailable("demo calling is not configured on this deployment")
	}

	dial, err := phone.DialNumber(phoneNumber, country)
	if err != nil {
		return CallResult{}, err
	}

	call, err := s.calls.CreateCall(ctx, vapi.CallRequest{
		AssistantID:   s.cfg.GetVapiDemoAssistantID(),
		PhoneNumberID: s.cfg.GetVapiDemoPhoneNumberID(),
		Customer: vapi.Customer{
			Number: "+" + dial,
			Name:   name,
		},
		AssistantOverrides: &vapi.AssistantOverrides{
			VariableValues: map[string]string{"name": name},
		},
	})
	if err != nil {
		s.log.UpstreamError("vapi", "create_call", err)
		return CallResult{}, apperr.Wrap(apperr.KindInternal, "failed to initiate call", err).
			WithDetails(err.Error())
	}

	return CallResult{
		Success: true,
		CallID:  call.ID,
		Message: fmt.Sprintf("Alex is calling %s at %s now!", name, dial),
	}, nil
}

// VoicePreview returns a short MP3 clip of the given catalog voice,
// serving from cache when possible.
func (s *Service) VoicePreview(ctx context.Context, voiceID string) ([]byte, error) {
	if voiceID == "" {
		return nil, apperr.Validation("missing voice parameter")
	}
	voice, ok := catalog.VoiceByID(voiceID)
	if !ok {
		return nil, apperr.Validation(fmt.Sprintf("unknown voice: %s", voiceID))
	}
	if s.tts == nil {
		return nil, apperr.Unavailable("voice preview is not configured on this deployment")
	}

	if audio, hit := s.cache.Get(ctx, voiceID); hit {
		return audio, nil
	}

	text := fmt.Sprintf("Hi there! I'm %s, your dedicated AI receptionist. How can I help you today?", voice.Name)
	audio, err := s.tts.Synthesize(ctx, voice.EngineVoiceID, text)
	if err != nil {
		s.log.UpstreamError("elevenlabs", "synthesize_preview", err)
		return nil, apperr.Wrap(apperr.KindUpstream, "voice generation failed", err)
	}

	s.cache.Set(ctx, voiceID, audio)
	return audio, nil
}
