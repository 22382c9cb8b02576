package services

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/data/repos/testutil"
	types "github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/portfolio"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/pkg/dbctx"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/apierr"
)

func newPreferenceService(t *testing.T) (PreferenceService, dbctx.Context) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return NewPreferenceService(log, repos.NewPreferenceRepo(db, log)), dbctx.New(context.Background())
}

func TestPreferenceCreate(t *testing.T) {
	svc, dbc := newPreferenceService(t)

	rec, err := svc.Create(dbc, PreferenceInput{
		PersonalityScore: Float(45.2),
		Theme:            types.ThemeProfessional,
		UserAgent:        "Mozilla/5.0",
		IPAddress:        "10.1.2.3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == 0 || rec.PersonalityCategory() != "balanced" {
		t.Fatalf("Create: unexpected record %+v", rec)
	}

	got, err := svc.Get(dbc, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.PersonalityScore != 45.2 || got.Theme != types.ThemeProfessional {
		t.Fatalf("Get: unexpected record %+v", got)
	}
}

func TestPreferenceCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		in   PreferenceInput
		want []string
	}{
		{
			name: "all_missing",
			in:   PreferenceInput{},
			want: []string{
				"Personality score can't be blank",
				"Theme can't be blank",
				"Theme is not included in the list",
				"User agent can't be blank",
				"Ip address can't be blank",
			},
		},
		{
			name: "out_of_range_and_unknown_theme",
			in:   PreferenceInput{PersonalityScore: Float(101), Theme: "dark", UserAgent: "ua", IPAddress: "ip"},
			want: []string{
				"Personality score must be less than or equal to 100",
				"Theme is not included in the list",
			},
		},
		{
			name: "negative",
			in:   PreferenceInput{PersonalityScore: Float(-0.5), Theme: types.ThemeCreative, UserAgent: "ua", IPAddress: "ip"},
			want: []string{"Personality score must be greater than or equal to 0"},
		},
		{
			name: "not_a_number",
			in:   PreferenceInput{PersonalityScore: OptionalFloat64{Set: true, Invalid: true}, Theme: types.ThemeCreative, UserAgent: "ua", IPAddress: "ip"},
			want: []string{"Personality score is not a number"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, dbc := newPreferenceService(t)
			_, err := svc.Create(dbc, tc.in)
			ae, ok := apierr.From(err)
			if !ok || !apierr.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !reflect.DeepEqual(ae.Messages, tc.want) {
				t.Fatalf("messages = %q, want %q", ae.Messages, tc.want)
			}
			list, err := svc.List(dbc, PreferenceQuery{})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(list) != 0 {
				t.Fatalf("invalid input must not persist, found %d records", len(list))
			}
		})
	}
}

func TestPreferenceScoreBoundsInclusive(t *testing.T) {
	svc, dbc := newPreferenceService(t)
	for _, score := range []float64{0, 100} {
		if _, err := svc.Create(dbc, PreferenceInput{PersonalityScore: Float(score), Theme: types.ThemePlayful, UserAgent: "ua", IPAddress: "ip"}); err != nil {
			t.Fatalf("Create(%v): %v", score, err)
		}
	}
}

func TestPreferenceUpdateTheme(t *testing.T) {
	svc, dbc := newPreferenceService(t)
	rec, err := svc.Create(dbc, PreferenceInput{PersonalityScore: Float(12.3), Theme: types.ThemeMinimalist, UserAgent: "ua", IPAddress: "ip"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateTheme(dbc, rec.ID, PreferenceThemeInput{Theme: types.ThemeCorporate})
	if err != nil {
		t.Fatalf("UpdateTheme: %v", err)
	}
	if updated.Theme != types.ThemeCorporate || updated.PersonalityScore != 12.3 {
		t.Fatalf("UpdateTheme: unexpected record %+v", updated)
	}

	if _, err := svc.UpdateTheme(dbc, rec.ID, PreferenceThemeInput{Theme: "neon"}); !apierr.IsValidation(err) {
		t.Fatalf("UpdateTheme invalid: expected validation error, got %v", err)
	}
	if _, err := svc.UpdateTheme(dbc, rec.ID+99, PreferenceThemeInput{Theme: types.ThemeCorporate}); !apierr.IsNotFound(err) {
		t.Fatalf("UpdateTheme missing: expected not found, got %v", err)
	}

	got, err := svc.Get(dbc, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Theme != types.ThemeCorporate {
		t.Fatalf("failed update must not change theme, got %s", got.Theme)
	}
}

func TestPreferenceGetMissing(t *testing.T) {
	svc, dbc := newPreferenceService(t)
	_, err := svc.Get(dbc, 42)
	ae, ok := apierr.From(err)
	if !ok || ae.Messages[0] != "Preference not found" {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestOptionalFloat64Decode(t *testing.T) {
	cases := []struct {
		raw     string
		set     bool
		invalid bool
		value   *float64
	}{
		{`{"personality_score": 45.2}`, true, false, ptr(45.2)},
		{`{"personality_score": "45.2"}`, true, false, ptr(45.2)},
		{`{"personality_score": "abc"}`, true, true, nil},
		{`{"personality_score": null}`, true, false, nil},
		{`{}`, false, false, nil},
	}
	for _, tc := range cases {
		var in PreferenceInput
		if err := json.Unmarshal([]byte(tc.raw), &in); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tc.raw, err)
		}
		got := in.PersonalityScore
		if got.Set != tc.set || got.Invalid != tc.invalid {
			t.Fatalf("%s: got %+v", tc.raw, got)
		}
		if (got.Value == nil) != (tc.value == nil) || (got.Value != nil && *got.Value != *tc.value) {
			t.Fatalf("%s: value mismatch %+v", tc.raw, got.Value)
		}
	}
}

func ptr(v float64) *float64 { return &v }
