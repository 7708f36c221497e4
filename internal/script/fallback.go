package script

import (
	"fmt"
	"strings"
)

// Fallback defaults used when optional profile fields are missing.
const (
	defaultStyle = "professional"
)

// Fallback builds the three script artifacts locally. It is a pure
// function of its inputs: identical profiles always produce byte-identical
// output, which the wizard relies on when no generation credential is
// configured and when the generation call fails.
func Fallback(p Profile) Result {
	voiceName := p.VoiceName

	greetingVoice := voiceName
	if greetingVoice == "" {
		greetingVoice = "your AI assistant"
	}
	greeting := fmt.Sprintf("Thank you for calling %s! This is %s. How can I help you today?", p.BusinessName, greetingVoice)

	personalityVoice := voiceName
	if personalityVoice == "" {
		personalityVoice = "The assistant"
	}
	style := p.Style
	if style == "" {
		style = defaultStyle
	}
	personality := fmt.Sprintf(
		"%s speaks in a %s tone. Knowledgeable about %s's services, always helpful and respectful of the caller's time.",
		personalityVoice, strings.ToLower(style), p.BusinessName,
	)

	return Result{
		Greeting:    greeting,
		Personality: personality,
		Script:      fallbackScript(p),
	}
}

func fallbackScript(p Profile) string {
	voiceName := p.VoiceName
	if voiceName == "" {
		voiceName = "the AI receptionist"
	}
	style := strings.ToLower(p.Style)
	if style == "" {
		style = defaultStyle
	}

	serviceText := ""
	if services := splitServices(p.Services); len(services) > 0 {
		serviceText = fmt.Sprintf("Our services include: %s.", strings.Join(services, ", "))
	}

	hoursText := ""
	if p.Hours != "" {
		hoursText = fmt.Sprintf("Our business hours are %s.", p.Hours)
	}

	faqText := ""
	if p.FAQs != "" {
		faqText = fmt.Sprintf("\n\nFrequently Asked Questions:\n%s", p.FAQs)
	}

	return fmt.Sprintf(`You are %s for %s (%s industry).

Your personality is %s. You answer calls professionally, provide information about the business, and help callers schedule appointments.

%s
%s

When a caller asks about services, provide helpful details. When they want to schedule an appointment, ask for their name, preferred date and time, and contact number. Always confirm the details before ending the call.

If you don't know the answer to a question, let the caller know you'll have someone follow up with them.%s`,
		voiceName, p.BusinessName, p.Industry, style, serviceText, hoursText, faqText)
}

// splitServices parses the comma-separated services field into trimmed,
// non-empty entries.
func splitServices(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
