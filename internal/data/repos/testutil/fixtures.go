package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
)

// InsertPreference writes a record directly, bypassing validation, with an
// explicit creation time.
func InsertPreference(tb testing.TB, db *gorm.DB, score float64, theme string, createdAt time.Time) *types.PreferenceRecord {
	tb.Helper()
	rec := &types.PreferenceRecord{
		PersonalityScore: score,
		Theme:            theme,
		UserAgent:        "testutil",
		IPAddress:        "127.0.0.1",
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
	if err := db.WithContext(context.Background()).Create(rec).Error; err != nil {
		tb.Fatalf("insert preference: %v", err)
	}
	return rec
}

func InsertContact(tb testing.TB, db *gorm.DB, name, status string, createdAt time.Time) *types.ContactSubmission {
	tb.Helper()
	c := &types.ContactSubmission{
		Name:      name,
		Email:     "someone@example.com",
		Message:   "Hello there, this is a test message.",
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := db.WithContext(context.Background()).Create(c).Error; err != nil {
		tb.Fatalf("insert contact: %v", err)
	}
	return c
}
