package validation

import (
	"strings"
	"testing"
)

func TestSetFirstFailingRuleWins(t *testing.T) {
	set := New().Field("name", Required("required"), CapitalizedAlpha("capital"))

	if errs := set.Validate(map[string]string{"name": ""}); errs["name"] != "required" {
		t.Fatalf("expected required message, got %q", errs["name"])
	}
	if errs := set.Validate(map[string]string{"name": "ravi"}); errs["name"] != "capital" {
		t.Fatalf("expected capital message, got %q", errs["name"])
	}
	if errs := set.Validate(map[string]string{"name": "  Ravi  "}); len(errs) != 0 {
		t.Fatalf("expected trimmed value to pass, got %v", errs)
	}
}

func TestSetMissingFieldIsBlank(t *testing.T) {
	errs := New().Field("phone", Digits(10, "phone")).Validate(map[string]string{})
	if !errs.Has("phone") {
		t.Fatalf("expected missing phone to fail, got %v", errs)
	}
}

func TestDateNotBefore(t *testing.T) {
	set := New().
		Field("received", Required("received required"), Date("received date")).
		Field("expiry", Optional(Date("expiry date"))).
		Cross(DateNotBefore("expiry", "received", "expiry before received"))

	cases := []struct {
		name     string
		received string
		expiry   string
		want     string
	}{
		{"after", "2024-01-01", "2024-01-10", ""},
		{"same day", "2024-01-01", "2024-01-01", ""},
		{"before", "2024-01-10", "2024-01-01", "expiry before received"},
		{"no expiry", "2024-01-10", "", ""},
		{"bad expiry keeps own message", "2024-01-10", "soon", "expiry date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := set.Validate(map[string]string{"received": tc.received, "expiry": tc.expiry})
			if errs["expiry"] != tc.want {
				t.Fatalf("expected expiry error %q, got %q", tc.want, errs["expiry"])
			}
		})
	}
}

func TestErrors(t *testing.T) {
	var empty Errors
	if empty.Err() != nil {
		t.Fatalf("expected nil error for empty map")
	}

	errs := Errors{"b": "second", "a": "first"}
	if errs.Err() == nil {
		t.Fatalf("expected error for non-empty map")
	}
	msg := errs.Error()
	if !strings.HasPrefix(msg, "validation failed: a: first; b: second") {
		t.Fatalf("unexpected message %q", msg)
	}
}
