package services

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// OptionalFloat64 accepts a JSON number or a numeric string. A value that is
// present but not numeric sets Invalid instead of failing the decode, so the
// caller can report it next to the other field errors.
type OptionalFloat64 struct {
	Set     bool
	Invalid bool
	Value   *float64
}

func Float(v float64) OptionalFloat64 {
	return OptionalFloat64{Set: true, Value: &v}
}

func (o *OptionalFloat64) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Invalid = false
	o.Value = nil
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		o.Value = &v
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		o.Invalid = true
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		o.Invalid = true
		return nil
	}
	o.Value = &f
	return nil
}

// PreferenceInput is the create payload. UserAgent and IPAddress are filled
// from the request, never from the body.
type PreferenceInput struct {
	PersonalityScore OptionalFloat64 `json:"personality_score"`
	Theme            string          `json:"theme"`
	UserAgent        string          `json:"-"`
	IPAddress        string          `json:"-"`
}

type PreferenceThemeInput struct {
	Theme string `json:"theme"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactStatusInput struct {
	Status string `json:"status"`
}

// PreferenceQuery carries the optional list filters.
type PreferenceQuery struct {
	Theme    string
	MinScore *float64
	MaxScore *float64
}

type ContactQuery struct {
	Status string
	Recent bool
}
