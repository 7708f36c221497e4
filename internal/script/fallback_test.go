package script

import (
	"strings"
	"testing"
)

func TestFallback_IsDeterministic(t *testing.T) {
	p := Profile{
		BusinessName: "Bright Smile Dental",
		Industry:     "dental",
		Hours:        "Mon-Fri 8am-6pm",
		Services:     "cleaning, whitening",
		VoiceName:    "Sarah",
		Style:        "Friendly",
	}

	first := Fallback(p)
	second := Fallback(p)

	if first != second {
		t.Fatalf("identical profiles must produce identical output")
	}
}

func TestFallback_Greeting(t *testing.T) {
	got := Fallback(Profile{BusinessName: "Bright Smile Dental", VoiceName: "Sarah"})
	want := "Thank you for calling Bright Smile Dental! This is Sarah. How can I help you today?"
	if got.Greeting != want {
		t.Fatalf("greeting = %q, want %q", got.Greeting, want)
	}

	// Without a voice name the greeting uses the generic assistant.
	got = Fallback(Profile{BusinessName: "Bright Smile Dental"})
	want = "Thank you for calling Bright Smile Dental! This is your AI assistant. How can I help you today?"
	if got.Greeting != want {
		t.Fatalf("greeting = %q, want %q", got.Greeting, want)
	}
}

func TestFallback_Personality(t *testing.T) {
	got := Fallback(Profile{BusinessName: "Acme Plumbing", VoiceName: "James", Style: "Concise"})
	want := "James speaks in a concise tone. Knowledgeable about Acme Plumbing's services, always helpful and respectful of the caller's time."
	if got.Personality != want {
		t.Fatalf("personality = %q, want %q", got.Personality, want)
	}

	got = Fallback(Profile{BusinessName: "Acme Plumbing"})
	if !strings.HasPrefix(got.Personality, "The assistant speaks in a professional tone.") {
		t.Fatalf("expected default personality voice and style, got %q", got.Personality)
	}
}

func TestFallback_ScriptIncludesServices(t *testing.T) {
	got := Fallback(Profile{
		BusinessName: "Bright Smile Dental",
		Industry:     "dental",
		Services:     "cleaning, whitening",
	})

	if !strings.Contains(got.Script, "Our services include: cleaning, whitening.") {
		t.Fatalf("script missing services sentence:\n%s", got.Script)
	}
}

func TestFallback_ScriptOmitsEmptySections(t *testing.T) {
	got := Fallback(Profile{BusinessName: "Acme", Industry: "plumbing"})

	if strings.Contains(got.Script, "Our services include") {
		t.Fatalf("script must omit services when none are given")
	}
	if strings.Contains(got.Script, "business hours") {
		t.Fatalf("script must omit hours when none are given")
	}
	if strings.Contains(got.Script, "Frequently Asked Questions") {
		t.Fatalf("script must omit FAQs when none are given")
	}
}

func TestFallback_ScriptIncludesHoursAndFAQs(t *testing.T) {
	got := Fallback(Profile{
		BusinessName: "Acme",
		Industry:     "plumbing",
		Hours:        "Mon-Fri 9am-5pm",
		FAQs:         "Q: Do you do emergencies?\nA: Yes, 24/7.",
	})

	if !strings.Contains(got.Script, "Our business hours are Mon-Fri 9am-5pm.") {
		t.Fatalf("script missing hours:\n%s", got.Script)
	}
	if !strings.Contains(got.Script, "Frequently Asked Questions:\nQ: Do you do emergencies?") {
		t.Fatalf("script missing FAQ section:\n%s", got.Script)
	}
}

func TestSplitServices(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"cleaning, whitening", []string{"cleaning", "whitening"}},
		{" cleaning ,, whitening ,", []string{"cleaning", "whitening"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tc := range cases {
		got := splitServices(tc.input)
		if len(got) != len(tc.want) {
			t.Fatalf("splitServices(%q) = %v, want %v", tc.input, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("splitServices(%q) = %v, want %v", tc.input, got, tc.want)
			}
		}
	}
}
