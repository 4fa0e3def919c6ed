package models

import "time"

// SessionProfile is the single persisted document per Mini-App viewer. The
// storage layer treats it as a whole-document read-modify-write value keyed by
// Key; there are no field-level updates.
type SessionProfile struct {
	ID              uint         `gorm:"primaryKey" json:"-"`
	Key             string       `gorm:"uniqueIndex;not null" json:"-"`
	User            *UserProfile `gorm:"serializer:json" json:"user"`
	VisitCount      int          `gorm:"not null;default:1" json:"visitCount"`
	LastVisitDate   string       `gorm:"not null" json:"lastVisitDate"` // day key, YYYY-MM-DD
	IsPremium       bool         `gorm:"not null;default:false" json:"isPremium"`
	IsUnlockedToday bool         `gorm:"not null;default:false" json:"isUnlockedToday"`
	// OracleTokens is nullable because the column arrived after the first
	// release; rows written before the migration carry NULL and must be
	// defaulted on load rather than rejected.
	OracleTokens *int      `gorm:"column:oracle_tokens" json:"oracleTokens"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// Tokens returns the oracle token balance, treating an unset column as zero.
func (profile *SessionProfile) Tokens() int {
	if profile.OracleTokens == nil {
		return 0
	}
	return *profile.OracleTokens
}

func (profile *SessionProfile) SetTokens(balance int) {
	if balance < 0 {
		balance = 0
	}
	profile.OracleTokens = &balance
}

// FillDefaults patches fields missing from documents written by older
// revisions. Returns true when anything changed.
func (profile *SessionProfile) FillDefaults(initialTokens int) bool {
	changed := false
	if profile.OracleTokens == nil {
		profile.SetTokens(initialTokens)
		changed = true
	}
	if profile.VisitCount < 1 {
		profile.VisitCount = 1
		changed = true
	}
	return changed
}
