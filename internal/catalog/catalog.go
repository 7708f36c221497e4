// Package catalog holds the static reference data behind the configuration
// wizard: selectable voices, personality styles, and plan tiers. The data
// is immutable and loaded at process start; per-customer state never lives
// here.
package catalog

import "fmt"

// Plan tier identifiers, ordered by rank.
const (
	PlanStarter    = "starter"
	PlanGrowth     = "growth"
	PlanEnterprise = "enterprise"
)

// DefaultVoiceID is the voice used when a stored voice id cannot be
// mapped to an engine voice. The fallback is always logged by callers.
const DefaultVoiceID = "alex"

// StyleCustom is the free-text style only available at the top tier.
const StyleCustom = "custom"

// Plan describes a subscription tier.
type Plan struct {
	ID    string `json:"id"`
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	Price string `json:"price"`
}

// Voice is a selectable receptionist voice with the minimum plan tier
// required to unlock it and its ElevenLabs engine voice id.
type Voice struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Description   string `json:"description"`
	Tier          string `json:"tier"`
	EngineVoiceID string `json:"-"`
}

// Style is a selectable personality style with its minimum plan tier.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
}

var plans = []Plan{
	{ID: PlanStarter, Rank: 0, Label: "Essentials", Price: "$149/mo"},
	{ID: PlanGrowth, Rank: 1, Label: "Professional", Price: "$349/mo"},
	{ID: PlanEnterprise, Rank: 2, Label: "Scale", Price: "$699/mo"},
}

var voices = []Voice{
	{ID: "alex", Name: "Alex", Gender: "male", Description: "Warm & professional", Tier: PlanStarter, EngineVoiceID: "pNInz6obpgDQGcFmaJgB"},
	{ID: "sarah", Name: "Sarah", Gender: "female", Description: "Friendly & confident", Tier: PlanStarter, EngineVoiceID: "21m00Tcm4TlvDq8ikWAM"},
	{ID: "james", Name: "James", Gender: "male", Description: "Calm & authoritative", Tier: PlanStarter, EngineVoiceID: "VR6AewLTigWG4xSOukaG"},
	{ID: "emma", Name: "Emma", Gender: "female", Description: "Energetic & approachable", Tier: PlanStarter, EngineVoiceID: "EXAVITQu4vr4xnSDxMaL"},
	{ID: "daniel", Name: "Daniel", Gender: "male", Description: "Deep & reassuring", Tier: PlanGrowth, EngineVoiceID: "onwK4e9ZLuTAKqWW03F9"},
	{ID: "maya", Name: "Maya", Gender: "female", Description: "Smooth & articulate", Tier: PlanGrowth, EngineVoiceID: "XB0fDUnXU5powFXDhCwa"},
	{ID: "chris", Name: "Chris", Gender: "male", Description: "Upbeat & conversational", Tier: PlanGrowth, EngineVoiceID: "iP95p4xoKVk53GoZ742B"},
	{ID: "sofia", Name: "Sofia", Gender: "female", Description: "Bilingual EN/ES", Tier: PlanGrowth, EngineVoiceID: "ThT5KcBeYPX3keUQqHPh"},
	{ID: "marcus", Name: "Marcus", Gender: "male", Description: "Executive gravitas", Tier: PlanEnterprise, EngineVoiceID: "N2lVS1w4EtoT3dr4eOWO"},
	{ID: "lily", Name: "Lily", Gender: "female", Description: "Soothing & empathetic", Tier: PlanEnterprise, EngineVoiceID: "pFZP5JQG7iQjIQuC4Bku"},
	{ID: "raj", Name: "Raj", Gender: "male", Description: "Multilingual specialist", Tier: PlanEnterprise, EngineVoiceID: "TX3LPaxmHKxFdv7VOQHJ"},
	{ID: "aiko", Name: "Aiko", Gender: "female", Description: "Multilingual EN/JP/KR", Tier: PlanEnterprise, EngineVoiceID: "XrExE9yKIg1WjnnlVkGX"},
}

var styles = []Style{
	{ID: "professional", Name: "Professional", Description: "Polished and business-like", Tier: PlanStarter},
	{ID: "friendly", Name: "Friendly", Description: "Warm, welcoming, and casual", Tier: PlanStarter},
	{ID: "concise", Name: "Concise", Description: "Efficient and straight to the point", Tier: PlanStarter},
	{ID: "energetic", Name: "Energetic", Description: "High-energy and enthusiastic", Tier: PlanGrowth},
	{ID: "empathetic", Name: "Empathetic", Description: "Caring, patient, and understanding", Tier: PlanGrowth},
	{ID: "luxury", Name: "Luxury", Description: "Premium concierge-level service", Tier: PlanGrowth},
	{ID: StyleCustom, Name: "Custom", Description: "Write your own personality", Tier: PlanEnterprise},
}

var (
	planByID  = map[string]Plan{}
	voiceByID = map[string]Voice{}
	styleByID = map[string]Style{}
)

func init() {
	for _, p := range plans {
		planByID[p.ID] = p
	}
	for _, v := range voices {
		voiceByID[v.ID] = v
	}
	for _, s := range styles {
		styleByID[s.ID] = s
	}
	if err := Verify(); err != nil {
		panic(err)
	}
}

// Verify checks the catalog for internal consistency: every voice and
// style must reference a known plan tier, and every voice must carry an
// engine voice id. It runs at init so an incomplete table fails fast
// instead of falling back silently at provisioning time.
func Verify() error {
	if _, ok := voiceByID[DefaultVoiceID]; !ok {
		return fmt.Errorf("catalog: default voice %q is not in the voice table", DefaultVoiceID)
	}
	for _, v := range voices {
		if _, ok := planByID[v.Tier]; !ok {
			return fmt.Errorf("catalog: voice %q references unknown tier %q", v.ID, v.Tier)
		}
		if v.EngineVoiceID == "" {
			return fmt.Errorf("catalog: voice %q has no engine voice id", v.ID)
		}
	}
	for _, s := range styles {
		if _, ok := planByID[s.Tier]; !ok {
			return fmt.Errorf("catalog: style %q references unknown tier %q", s.ID, s.Tier)
		}
	}
	return nil
}

// Plans returns all plan tiers in rank order.
func Plans() []Plan { return plans }

// Voices returns all catalog voices.
func Voices() []Voice { return voices }

// Styles returns all catalog styles.
func Styles() []Style { return styles }

// PlanRank returns the rank of a plan tier and whether the plan exists.
func PlanRank(planID string) (int, bool) {
	p, ok := planByID[planID]
	return p.Rank, ok
}

// VoiceByID looks up a voice by identifier.
func VoiceByID(id string) (Voice, bool) {
	v, ok := voiceByID[id]
	return v, ok
}

// StyleByID looks up a style by identifier.
func StyleByID(id string) (Style, bool) {
	s, ok := styleByID[id]
	return s, ok
}

// Unlocked reports whether an item requiring itemTier is selectable under
// the given plan: the item's tier rank must not exceed the plan's rank.
func Unlocked(itemTier, planID string) bool {
	itemRank, ok := PlanRank(itemTier)
	if !ok {
		return false
	}
	planRank, ok := PlanRank(planID)
	if !ok {
		return false
	}
	return itemRank <= planRank
}

// EngineVoice resolves a catalog voice id to its engine voice id. When the
// id is unmapped it returns the default voice's engine id and false, so the
// caller can log the fallback explicitly.
func EngineVoice(voiceID string) (string, bool) {
	if v, ok := voiceByID[voiceID]; ok {
		return v.EngineVoiceID, true
	}
	return voiceByID[DefaultVoiceID].EngineVoiceID, false
}
