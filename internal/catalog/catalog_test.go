package catalog

import "testing"

func TestUnlocked_TierOrdering(t *testing.T) {
	cases := []struct {
		itemTier string
		planID   string
		want     bool
	}{
		{PlanStarter, PlanStarter, true},
		{PlanStarter, PlanGrowth, true},
		{PlanStarter, PlanEnterprise, true},
		{PlanGrowth, PlanStarter, false},
		{PlanGrowth, PlanGrowth, true},
		{PlanGrowth, PlanEnterprise, true},
		{PlanEnterprise, PlanStarter, false},
		{PlanEnterprise, PlanGrowth, false},
		{PlanEnterprise, PlanEnterprise, true},
	}

	for _, tc := range cases {
		if got := Unlocked(tc.itemTier, tc.planID); got != tc.want {
			t.Fatalf("Unlocked(%s, %s) = %v, want %v", tc.itemTier, tc.planID, got, tc.want)
		}
	}
}

func TestUnlocked_UnknownInputsAreLocked(t *testing.T) {
	if Unlocked("platinum", PlanEnterprise) {
		t.Fatalf("unknown item tier must be locked")
	}
	if Unlocked(PlanStarter, "gold") {
		t.Fatalf("unknown plan must unlock nothing")
	}
}

func TestVoiceDistributionPerTier(t *testing.T) {
	counts := map[string]int{}
	for _, v := range Voices() {
		counts[v.Tier]++
	}
	if counts[PlanStarter] != 4 || counts[PlanGrowth] != 4 || counts[PlanEnterprise] != 4 {
		t.Fatalf("expected 4 voices per tier, got %v", counts)
	}
}

func TestEngineVoice(t *testing.T) {
	id, mapped := EngineVoice("sarah")
	if !mapped || id != "21m00Tcm4TlvDq8ikWAM" {
		t.Fatalf("EngineVoice(sarah) = %q mapped=%v", id, mapped)
	}

	// Unknown voices fall back to the default voice's engine id.
	id, mapped = EngineVoice("nobody")
	if mapped {
		t.Fatalf("unknown voice must report mapped=false")
	}
	defaultEngine, _ := EngineVoice(DefaultVoiceID)
	if id != defaultEngine {
		t.Fatalf("fallback engine %q, want default %q", id, defaultEngine)
	}
}

func TestCustomStyleIsEnterpriseOnly(t *testing.T) {
	style, ok := StyleByID(StyleCustom)
	if !ok {
		t.Fatalf("custom style missing from catalog")
	}
	if style.Tier != PlanEnterprise {
		t.Fatalf("custom style tier = %s, want %s", style.Tier, PlanEnterprise)
	}
}

func TestVerify(t *testing.T) {
	if err := Verify(); err != nil {
		t.Fatalf("catalog inconsistent: %v", err)
	}
}

func TestPlanRank(t *testing.T) {
	for i, planID := range []string{PlanStarter, PlanGrowth, PlanEnterprise} {
		rank, ok := PlanRank(planID)
		if !ok || rank != i {
			t.Fatalf("PlanRank(%s) = %d,%v want %d,true", planID, rank, ok, i)
		}
	}
	if _, ok := PlanRank("gold"); ok {
		t.Fatalf("unknown plan must have no rank")
	}
}
