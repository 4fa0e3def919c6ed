package api

import (
	"net/http"
	"testing"

	"github.com/velmora/aetheria/internal/models"
	"github.com/velmora/aetheria/internal/services"
)

type sessionBody struct {
	Stage      services.Stage          `json:"stage"`
	Profile    *models.SessionProfile  `json:"profile"`
	Prediction *models.DailyPrediction `json:"prediction"`
	IsLocked   bool                    `json:"isLocked"`
}

func TestSessionRequiresAuth(t *testing.T) {
	ta := newTestApp(t)

	response := ta.getJSON(t, "/api/session", "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session cookie, got %d", response.StatusCode)
	}
}

func TestAuthRejectsForgedInitData(t *testing.T) {
	ta := newTestApp(t)

	response := ta.postJSON(t, "/api/auth/telegram", "", map[string]string{
		"initData": "auth_date=1&user=%7B%22id%22%3A99%7D&hash=deadbeef",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged init data, got %d", response.StatusCode)
	}
}

func TestFreshViewerStartsAtOnboarding(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.authCookie(t)

	var body sessionBody
	decodeBody(t, ta.getJSON(t, "/api/session", cookie), &body)

	if body.Stage != services.StageOnboarding {
		t.Fatalf("expected onboarding stage, got %q", body.Stage)
	}
	if body.Profile != nil {
		t.Fatalf("expected no profile, got %+v", body.Profile)
	}
}

func TestOnboardingFlow(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.authCookie(t)

	var created sessionBody
	decodeBody(t, ta.postJSON(t, "/api/session/onboarding", cookie, map[string]string{
		"name":      "Анна",
		"birthDate": "1995-07-10",
	}), &created)

	if created.Stage != services.StageRitual {
		t.Fatalf("expected ritual stage after onboarding, got %q", created.Stage)
	}
	if created.Profile == nil || created.Profile.User == nil {
		t.Fatal("expected a created profile")
	}
	if created.Profile.User.ZodiacSign != services.SignCancer {
		t.Fatalf("expected zodiac %q, got %q", services.SignCancer, created.Profile.User.ZodiacSign)
	}
	if created.Profile.VisitCount != 1 {
		t.Fatalf("expected visitCount 1, got %d", created.Profile.VisitCount)
	}
	if created.Prediction == nil || created.Prediction.Text == "" {
		t.Fatal("expected a synchronous prediction")
	}
	if !created.IsLocked {
		t.Fatal("expected a fresh profile to be locked")
	}

	// Ritual completion is stateless but must report the dashboard stage.
	var ritual struct {
		Stage services.Stage `json:"stage"`
	}
	decodeBody(t, ta.postJSON(t, "/api/session/ritual-complete", cookie, nil), &ritual)
	if ritual.Stage != services.StageDashboard {
		t.Fatalf("expected dashboard stage after ritual, got %q", ritual.Stage)
	}

	// Reloading lands on the dashboard without another visit increment.
	var reloaded sessionBody
	decodeBody(t, ta.getJSON(t, "/api/session", cookie), &reloaded)
	if reloaded.Stage != services.StageDashboard {
		t.Fatalf("expected dashboard stage on reload, got %q", reloaded.Stage)
	}
	if reloaded.Profile.VisitCount != 1 {
		t.Fatalf("same-day reload incremented visitCount to %d", reloaded.Profile.VisitCount)
	}
}

func TestOnboardingValidation(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.authCookie(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "empty name", body: map[string]string{"name": "  ", "birthDate": "1995-07-10"}},
		{name: "bad date", body: map[string]string{"name": "Анна", "birthDate": "десятое июля"}},
		{name: "future date", body: map[string]string{"name": "Анна", "birthDate": "2099-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := ta.postJSON(t, "/api/session/onboarding", cookie, tt.body)
			defer response.Body.Close()
			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestResetReturnsToOnboarding(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.authCookie(t)
	onboardViewer(t, ta, cookie)

	var reset struct {
		Stage services.Stage `json:"stage"`
	}
	decodeBody(t, ta.postJSON(t, "/api/session/reset", cookie, nil), &reset)
	if reset.Stage != services.StageOnboarding {
		t.Fatalf("expected onboarding stage after reset, got %q", reset.Stage)
	}

	var body sessionBody
	decodeBody(t, ta.getJSON(t, "/api/session", cookie), &body)
	if body.Stage != services.StageOnboarding {
		t.Fatalf("expected onboarding stage after reset reload, got %q", body.Stage)
	}
	if body.Profile != nil {
		t.Fatalf("expected no residual profile after reset, got %+v", body.Profile)
	}
}
