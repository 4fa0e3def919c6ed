package models

// UserProfile holds the identity facts collected during onboarding.
// Immutable after creation except by a full profile reset.
type UserProfile struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"` // YYYY-MM-DD
	ZodiacSign string `json:"zodiacSign"`
}
