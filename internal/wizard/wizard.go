// Package wizard models the four-step configuration flow as an explicit
// state value with pure transition functions. Handlers and tests operate
// on returned copies; nothing here mutates shared state.
//
// Step order: plan, voice, style, business profile + script confirmation.
// A step's selection must be non-empty before the flow can advance past
// it, and voice/style choices are gated by the selected plan's tier.
package wizard

import (
	"errors"

	"ringly_backend/internal/catalog"
)

// Step identifies a wizard step.
type Step int

const (
	StepPlan Step = iota + 1
	StepVoice
	StepStyle
	StepProfile
)

var (
	// ErrIncomplete is returned when advancing without the current
	// step's required selection.
	ErrIncomplete = errors.New("wizard: current step selection is incomplete")
	// ErrLocked is returned when selecting an item above the plan's tier.
	ErrLocked = errors.New("wizard: item is locked for the selected plan")
	// ErrUnknownItem is returned for identifiers not in the catalog.
	ErrUnknownItem = errors.New("wizard: unknown catalog item")
	// ErrWrongStep is returned for an action taken on the wrong step.
	ErrWrongStep = errors.New("wizard: action not valid for current step")
)

// ConfirmAction tells the caller what the confirm button does next.
type ConfirmAction int

const (
	// ActionGenerateScript means the profile is complete and a script
	// should be generated.
	ActionGenerateScript ConfirmAction = iota
	// ActionSubmit means a script already exists; proceed to final
	// submission, never re-generating for unchanged inputs.
	ActionSubmit
)

// State is a snapshot of the wizard's selections.
type State struct {
	Step            Step
	Plan            string
	Voice           string
	Style           string
	CustomStyle     string
	ProfileComplete bool
	ScriptGenerated bool
}

// New returns the initial wizard state on the plan step.
func New() State {
	return State{Step: StepPlan}
}

// SelectPlan picks a plan tier. Voice and style selections made under a
// tier the new plan no longer unlocks are cleared; still-valid selections
// survive the change.
func (s State) SelectPlan(planID string) (State, error) {
	if _, ok := catalog.PlanRank(planID); !ok {
		return s, ErrUnknownItem
	}

	next := s
	next.Plan = planID

	if next.Voice != "" {
		if v, ok := catalog.VoiceByID(next.Voice); !ok || !catalog.Unlocked(v.Tier, planID) {
			next.Voice = ""
		}
	}
	if next.Style != "" {
		if st, ok := catalog.StyleByID(next.Style); !ok || !catalog.Unlocked(st.Tier, planID) {
			next.Style = ""
			next.CustomStyle = ""
		}
	}

	return next, nil
}

// SelectVoice picks a voice; it must exist and be unlocked by the plan.
func (s State) SelectVoice(voiceID string) (State, error) {
	v, ok := catalog.VoiceByID(voiceID)
	if !ok {
		return s, ErrUnknownItem
	}
	if !catalog.Unlocked(v.Tier, s.Plan) {
		return s, ErrLocked
	}

	next := s
	next.Voice = voiceID
	return next, nil
}

// SelectStyle picks a style; it must exist and be unlocked by the plan.
// customText is only honored for the custom style.
func (s State) SelectStyle(styleID, customText string) (State, error) {
	st, ok := catalog.StyleByID(styleID)
	if !ok {
		return s, ErrUnknownItem
	}
	if !catalog.Unlocked(st.Tier, s.Plan) {
		return s, ErrLocked
	}

	next := s
	next.Style = styleID
	if styleID == catalog.StyleCustom {
		next.CustomStyle = customText
	} else {
		next.CustomStyle = ""
	}
	return next, nil
}

// WithProfile records whether the business profile form validates. Any
// change to the profile invalidates a previously generated script.
func (s State) WithProfile(complete bool) State {
	next := s
	next.ProfileComplete = complete
	next.ScriptGenerated = false
	return next
}

// WithGeneratedScript marks the current inputs as having a script.
func (s State) WithGeneratedScript() State {
	next := s
	next.ScriptGenerated = true
	return next
}

// Advance moves to the next step if the current step's selection is made.
func (s State) Advance() (State, error) {
	switch s.Step {
	case StepPlan:
		if s.Plan == "" {
			return s, ErrIncomplete
		}
	case StepVoice:
		if s.Voice == "" {
			return s, ErrIncomplete
		}
	case StepStyle:
		if s.Style == "" {
			return s, ErrIncomplete
		}
	case StepProfile:
		return s, ErrWrongStep
	}

	next := s
	next.Step++
	return next, nil
}

// Back moves one step backwards, preserving selections.
func (s State) Back() State {
	if s.Step <= StepPlan {
		return s
	}
	next := s
	next.Step--
	return next
}

// Confirm resolves the final step's action: generate a script for the
// completed profile, or submit when a script already exists.
func (s State) Confirm() (ConfirmAction, error) {
	if s.Step != StepProfile {
		return 0, ErrWrongStep
	}
	if !s.ProfileComplete {
		return 0, ErrIncomplete
	}
	if s.ScriptGenerated {
		return ActionSubmit, nil
	}
	return ActionGenerateScript, nil
}
