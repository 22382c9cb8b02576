package logger

import (
	"strings"
	"testing"
)

func TestSanitizeValue(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  interface{}
		want func(interface{}) bool
	}{
		{
			name: "email_redacted",
			key:  "email",
			val:  "someone@example.com",
			want: func(v interface{}) bool { return v == "[REDACTED]" },
		},
		{
			name: "ip_hashed",
			key:  "ip_address",
			val:  "192.168.1.100",
			want: func(v interface{}) bool {
				s, ok := v.(string)
				return ok && strings.HasPrefix(s, "hash:") && len(s) == len("hash:")+12
			},
		},
		{
			name: "theme_untouched",
			key:  "theme",
			val:  "creative",
			want: func(v interface{}) bool { return v == "creative" },
		},
		{
			name: "nested_map",
			key:  "payload",
			val:  map[string]interface{}{"Email": "a@b.co", "theme": "dark"},
			want: func(v interface{}) bool {
				m, ok := v.(map[string]interface{})
				return ok && m["Email"] == "[REDACTED]" && m["theme"] == "dark"
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeValue(tc.key, tc.val)
			if !tc.want(got) {
				t.Fatalf("sanitizeValue(%q, %v) = %v", tc.key, tc.val, got)
			}
		})
	}
}

func TestHashValueStable(t *testing.T) {
	a := hashValue("10.0.0.1")
	b := hashValue("10.0.0.1")
	if a != b {
		t.Fatalf("hash not stable: %q vs %q", a, b)
	}
	if hashValue("") != "" {
		t.Fatalf("empty input should hash to empty string")
	}
}

func TestNewTestModeIsQuiet(t *testing.T) {
	log, err := New("test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("discarded", "email", "x@y.z")
	log.With("service", "TestService").Warn("also discarded")
}
