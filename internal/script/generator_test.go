package script

import (
	"context"
	"strings"
	"testing"

	"ringly_backend/platform/logger"
)

func TestParseModelOutput(t *testing.T) {
	raw := `{"greeting":"Hello!","personality":"Warm.","script":"Answer calls."}`

	result, err := parseModelOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Greeting != "Hello!" || result.Personality != "Warm." || result.Script != "Answer calls." {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestParseModelOutput_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"greeting\":\"Hi\",\"personality\":\"Calm\",\"script\":\"Do the thing\"}\n```"

	result, err := parseModelOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Greeting != "Hi" {
		t.Fatalf("unexpected greeting %q", result.Greeting)
	}
}

func TestParseModelOutput_Rejects(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		`{"greeting":"Hi"}`,
		`{"greeting":"Hi","personality":"","script":"x"}`,
	}

	for _, raw := range cases {
		if _, err := parseModelOutput(raw); err == nil {
			t.Fatalf("parseModelOutput(%q): expected error", raw)
		}
	}
}

func TestGenerate_FallsBackWithoutClient(t *testing.T) {
	g, err := NewGenerator(context.Background(), "", "gemini-2.0-flash", logger.New("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := Profile{BusinessName: "Acme", Industry: "plumbing", Services: "repairs"}
	got := g.Generate(context.Background(), p)
	if got != Fallback(p) {
		t.Fatalf("credential-less generator must return the deterministic fallback")
	}
}

func TestBuildPrompt_Defaults(t *testing.T) {
	prompt := buildPrompt(Profile{BusinessName: "Acme", Industry: "plumbing"})

	for _, want := range []string{
		"- Hours: Mon-Fri 9am-5pm",
		"- Phone: N/A",
		"- FAQs: None provided",
		`Use the voice name "Alex"`,
		`"Professional" personality style`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_UsesProfileValues(t *testing.T) {
	prompt := buildPrompt(Profile{
		BusinessName: "Bright Smile Dental",
		Industry:     "dental",
		Hours:        "Mon-Sat 8am-8pm",
		VoiceName:    "Sarah",
		Style:        "Friendly",
	})

	for _, want := range []string{
		"- Name: Bright Smile Dental",
		"- Hours: Mon-Sat 8am-8pm",
		`Use the voice name "Sarah"`,
		"Be specific to the dental industry",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}
