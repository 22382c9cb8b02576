// Package portfolio holds the durable records owned by the API: preference
// records captured after an assessment and contact form submissions.
package portfolio

import (
	"encoding/json"
	"net/netip"
	"strings"
	"time"
)

// Server side theme values. These predate the client theme keys and are kept
// as stored; see ServerThemeFor for the mapping.
const (
	ThemeCorporate    = "corporate"
	ThemeCreative     = "creative"
	ThemePlayful      = "playful"
	ThemeProfessional = "professional"
	ThemeMinimalist   = "minimalist"
)

func ServerThemes() []string {
	return []string{ThemeCorporate, ThemeCreative, ThemePlayful, ThemeProfessional, ThemeMinimalist}
}

func IsServerTheme(v string) bool {
	for _, t := range ServerThemes() {
		if v == t {
			return true
		}
	}
	return false
}

const (
	MinServerScore = 0
	MaxServerScore = 100
)

// PreferenceRecord is one finalized assessment outcome. Only the theme may
// change after creation.
type PreferenceRecord struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonalityScore float64   `gorm:"column:personality_score;type:decimal(5,2);not null;index" json:"personality_score"`
	Theme            string    `gorm:"column:theme;size:32;not null;index" json:"theme"`
	UserAgent        string    `gorm:"column:user_agent;type:text" json:"-"`
	IPAddress        string    `gorm:"column:ip_address;size:64" json:"-"`
	CreatedAt        time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (PreferenceRecord) TableName() string { return "user_preferences" }

// PersonalityCategory buckets the 0..100 score. Bands are upper inclusive.
func (p PreferenceRecord) PersonalityCategory() string {
	return CategoryFor(p.PersonalityScore)
}

func CategoryFor(score float64) string {
	switch {
	case score < MinServerScore || score > MaxServerScore:
		return "unknown"
	case score <= 20:
		return "analytical"
	case score <= 40:
		return "practical"
	case score <= 60:
		return "balanced"
	case score <= 80:
		return "creative"
	default:
		return "visionary"
	}
}

// AnonymizedIP keeps the network prefix of the stored address and masks the rest.
func (p PreferenceRecord) AnonymizedIP() string {
	raw := strings.TrimSpace(p.IPAddress)
	if raw == "" {
		return ""
	}
	if addr, err := netip.ParseAddr(raw); err == nil && addr.Is6() && !addr.Is4In6() {
		groups := strings.Split(addr.StringExpanded(), ":")
		return trimGroup(groups[0]) + ":" + trimGroup(groups[1]) + ":xxxx:xxxx:xxxx:xxxx:xxxx:xxxx"
	}
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return "xxx.xxx.xxx.xxx"
	}
	return parts[0] + "." + parts[1] + ".xxx.xxx"
}

type preferenceView struct {
	ID                  uint      `json:"id"`
	PersonalityScore    float64   `json:"personality_score"`
	Theme               string    `json:"theme"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	PersonalityCategory string    `json:"personality_category"`
}

// MarshalJSON never exposes the raw user agent or address.
func (p PreferenceRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(preferenceView{
		ID:                  p.ID,
		PersonalityScore:    p.PersonalityScore,
		Theme:               p.Theme,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		PersonalityCategory: p.PersonalityCategory(),
	})
}

func trimGroup(g string) string {
	if t := strings.TrimLeft(g, "0"); t != "" {
		return t
	}
	return "0"
}
