package services

import "testing"

func TestNextStageTransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		current Stage
		event   StageEvent
		want    Stage
		wantErr bool
	}{
		{name: "onboarding to ritual", current: StageOnboarding, event: EventProfileCreated, want: StageRitual},
		{name: "onboarding restored to dashboard", current: StageOnboarding, event: EventSessionRestored, want: StageDashboard},
		{name: "ritual to dashboard", current: StageRitual, event: EventRitualFinished, want: StageDashboard},
		{name: "reset from onboarding", current: StageOnboarding, event: EventReset, want: StageOnboarding},
		{name: "reset from ritual", current: StageRitual, event: EventReset, want: StageOnboarding},
		{name: "reset from dashboard", current: StageDashboard, event: EventReset, want: StageOnboarding},
		{name: "dashboard rejects profile created", current: StageDashboard, event: EventProfileCreated, wantErr: true},
		{name: "ritual rejects restore", current: StageRitual, event: EventSessionRestored, wantErr: true},
		{name: "onboarding rejects ritual finish", current: StageOnboarding, event: EventRitualFinished, wantErr: true},
		{name: "unknown stage", current: Stage("LIMBO"), event: EventProfileCreated, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStage(tt.current, tt.event)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NextStage(%q, %q) expected error, got %q", tt.current, tt.event, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextStage(%q, %q) unexpected error: %v", tt.current, tt.event, err)
			}
			if got != tt.want {
				t.Fatalf("NextStage(%q, %q) = %q, want %q", tt.current, tt.event, got, tt.want)
			}
		})
	}
}
