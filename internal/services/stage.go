package services

import "fmt"

// Stage is the explicit screen-flow state: onboarding → ritual → dashboard,
// with reset as the only way back.
type Stage string

const (
	StageOnboarding Stage = "ONBOARDING"
	StageRitual     Stage = "RITUAL"
	StageDashboard  Stage = "DASHBOARD"
)

type StageEvent string

const (
	EventProfileCreated  StageEvent = "profile_created"
	EventRitualFinished  StageEvent = "ritual_finished"
	EventSessionRestored StageEvent = "session_restored"
	EventReset           StageEvent = "reset"
)

// NextStage is the single transition function for the session flow. Reset is
// accepted from every stage; everything else follows the fixed table.
func NextStage(current Stage, event StageEvent) (Stage, error) {
	if event == EventReset {
		return StageOnboarding, nil
	}

	switch current {
	case StageOnboarding:
		switch event {
		case EventProfileCreated:
			return StageRitual, nil
		case EventSessionRestored:
			return StageDashboard, nil
		}
	case StageRitual:
		if event == EventRitualFinished {
			return StageDashboard, nil
		}
	case StageDashboard:
		// Terminal until reset.
	default:
		return current, fmt.Errorf("unknown stage %q", current)
	}

	return current, fmt.Errorf("event %q not allowed in stage %q", event, current)
}
