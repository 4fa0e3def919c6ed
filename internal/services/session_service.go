package services

import (
	"errors"
	"strings"
	"time"

	"github.com/velmora/aetheria/internal/models"
)

var (
	ErrNameRequired      = errors.New("display name is required")
	ErrBirthDateInvalid  = errors.New("birth date is invalid")
	ErrBirthDateInFuture = errors.New("birth date is in the future")
	ErrProfileNotFound   = errors.New("session profile not found")
	ErrTokenAmount       = errors.New("token amount must be positive")
)

// ProfileRepository is the whole-document store behind the session state
// machine. Save replaces the entire document (last-write-wins); there are no
// field-level updates.
type ProfileRepository interface {
	Load(key string) (models.SessionProfile, bool, error)
	Save(profile *models.SessionProfile) error
	Clear(key string) error
}

type SessionService struct {
	profiles      ProfileRepository
	location      *time.Location
	initialTokens int
}

func NewSessionService(profiles ProfileRepository, location *time.Location, initialTokens int) *SessionService {
	if location == nil {
		location = time.UTC
	}
	if initialTokens < 0 {
		initialTokens = 0
	}
	return &SessionService{profiles: profiles, location: location, initialTokens: initialTokens}
}

func (service *SessionService) Location() *time.Location {
	return service.location
}

// CompleteOnboarding validates the onboarding input, creates the persisted
// profile and returns it together with the initial prediction. The prediction
// is computed synchronously so the dashboard always has content even if
// enrichment never arrives.
func (service *SessionService) CompleteOnboarding(key string, name string, birthDate string, now time.Time) (models.SessionProfile, models.DailyPrediction, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return models.SessionProfile{}, models.DailyPrediction{}, ErrNameRequired
	}

	born, err := ParseDayKey(strings.TrimSpace(birthDate), service.location)
	if err != nil {
		return models.SessionProfile{}, models.DailyPrediction{}, ErrBirthDateInvalid
	}
	if born.After(DateAtLocation(now, service.location)) {
		return models.SessionProfile{}, models.DailyPrediction{}, ErrBirthDateInFuture
	}

	zodiac := ZodiacSignFor(born)
	profile := models.SessionProfile{
		Key: key,
		User: &models.UserProfile{
			Name:       trimmedName,
			BirthDate:  born.Format("2006-01-02"),
			ZodiacSign: zodiac,
		},
		VisitCount:      1,
		LastVisitDate:   DayKey(now, service.location),
		IsPremium:       false,
		IsUnlockedToday: false,
	}
	profile.SetTokens(service.initialTokens)

	// Re-onboarding over an existing document keeps its row identity so the
	// save stays a whole-document replace.
	if existing, found, err := service.profiles.Load(key); err != nil {
		return models.SessionProfile{}, models.DailyPrediction{}, err
	} else if found {
		profile.ID = existing.ID
	}

	if err := service.profiles.Save(&profile); err != nil {
		return models.SessionProfile{}, models.DailyPrediction{}, err
	}

	prediction := GeneratePrediction(zodiac, now, service.location)
	return profile, prediction, nil
}

// Reconcile runs the load-time day-rollover bookkeeping: at most one visit
// increment per calendar day, and the daily unlock expires with the day. The
// updated document is persisted before it is returned, so a save failure
// never leaks a mutated in-memory profile.
func (service *SessionService) Reconcile(key string, now time.Time) (models.SessionProfile, bool, error) {
	profile, found, err := service.profiles.Load(key)
	if err != nil || !found {
		return models.SessionProfile{}, found, err
	}
	profile.FillDefaults(service.initialTokens)

	today := DayKey(now, service.location)
	if profile.LastVisitDate == today {
		return profile, true, nil
	}

	profile.VisitCount++
	profile.LastVisitDate = today
	profile.IsUnlockedToday = false
	if err := service.profiles.Save(&profile); err != nil {
		return models.SessionProfile{}, true, err
	}
	return profile, true, nil
}

// IsLocked is the paywall decision. Recomputed on every read, never stored.
func IsLocked(profile *models.SessionProfile) bool {
	return !profile.IsPremium && !profile.IsUnlockedToday
}

// PredictionFor regenerates the prediction for a profile at the given
// instant. Safe to call any number of times.
func (service *SessionService) PredictionFor(profile *models.SessionProfile, now time.Time) (models.DailyPrediction, error) {
	if profile.User == nil {
		return models.DailyPrediction{}, ErrProfileNotFound
	}
	return GeneratePrediction(profile.User.ZodiacSign, now, service.location), nil
}

// GrantPremium sets the permanent entitlement. Idempotent: a second grant is
// a no-op that skips the write entirely.
func (service *SessionService) GrantPremium(key string) (models.SessionProfile, error) {
	return service.mutate(key, func(profile *models.SessionProfile) (bool, error) {
		if profile.IsPremium {
			return false, nil
		}
		profile.IsPremium = true
		return true, nil
	})
}

// GrantDailyUnlock opens the paywall until the next day rollover.
func (service *SessionService) GrantDailyUnlock(key string) (models.SessionProfile, error) {
	return service.mutate(key, func(profile *models.SessionProfile) (bool, error) {
		if profile.IsUnlockedToday {
			return false, nil
		}
		profile.IsUnlockedToday = true
		return true, nil
	})
}

// PurchaseTokens credits a positive token amount from a completed purchase.
func (service *SessionService) PurchaseTokens(key string, amount int) (models.SessionProfile, error) {
	if amount <= 0 {
		return models.SessionProfile{}, ErrTokenAmount
	}
	return service.mutate(key, func(profile *models.SessionProfile) (bool, error) {
		profile.SetTokens(profile.Tokens() + amount)
		return true, nil
	})
}

// ConsumeToken spends one oracle token. On a zero balance it reports
// ok=false and mutates nothing; the balance never goes negative. Callers must
// consume before starting any external call, not after.
func (service *SessionService) ConsumeToken(key string) (models.SessionProfile, bool, error) {
	consumed := false
	profile, err := service.mutate(key, func(profile *models.SessionProfile) (bool, error) {
		if profile.Tokens() <= 0 {
			return false, nil
		}
		profile.SetTokens(profile.Tokens() - 1)
		consumed = true
		return true, nil
	})
	if err != nil {
		return models.SessionProfile{}, false, err
	}
	return profile, consumed, nil
}

// Reset clears the persisted document entirely; the next load starts the
// flow at onboarding with nothing left behind.
func (service *SessionService) Reset(key string) error {
	return service.profiles.Clear(key)
}

// mutate runs one whole-document read-modify-write cycle. The mutated profile
// is returned only after a successful save, keeping in-memory state and the
// store in agreement.
func (service *SessionService) mutate(key string, apply func(profile *models.SessionProfile) (bool, error)) (models.SessionProfile, error) {
	profile, found, err := service.profiles.Load(key)
	if err != nil {
		return models.SessionProfile{}, err
	}
	if !found {
		return models.SessionProfile{}, ErrProfileNotFound
	}
	profile.FillDefaults(service.initialTokens)

	changed, err := apply(&profile)
	if err != nil {
		return models.SessionProfile{}, err
	}
	if !changed {
		return profile, nil
	}

	if err := service.profiles.Save(&profile); err != nil {
		return models.SessionProfile{}, err
	}
	return profile, nil
}
