package validation

import "testing"

func TestRules(t *testing.T) {
	cases := []struct {
		name  string
		rule  Rule
		value string
		ok    bool
	}{
		{"required blank", Required("x"), "", false},
		{"required spaces", Required("x"), "   ", false},
		{"required value", Required("x"), "a", true},
		{"capitalized alpha", CapitalizedAlpha("x"), "Ravi Kumar", true},
		{"capitalized alpha lower", CapitalizedAlpha("x"), "ravi", false},
		{"capitalized alpha hyphen", CapitalizedAlpha("x"), "Jean-Luc", false},
		{"capitalized alpha digit", CapitalizedAlpha("x"), "Ravi2", false},
		{"digits ten", Digits(10, "x"), "9876543210", true},
		{"digits nine", Digits(10, "x"), "987654321", false},
		{"digits letters", Digits(10, "x"), "98765432ab", false},
		{"whole number zero", WholeNumber("x"), "0", true},
		{"whole number negative", WholeNumber("x"), "-1", false},
		{"positive int", PositiveInt("x"), "50", true},
		{"positive int zero", PositiveInt("x"), "0", false},
		{"positive int leading zero", PositiveInt("x"), "05", false},
		{"positive int decimal", PositiveInt("x"), "1.5", false},
		{"positive int overflow", PositiveInt("x"), "99999999999999999999", false},
		{"whole number overflow", WholeNumber("x"), "99999999999999999999", false},
		{"positive number decimal", PositiveNumber("x"), "2.5", true},
		{"positive number zero", PositiveNumber("x"), "0", false},
		{"positive number negative", PositiveNumber("x"), "-3", false},
		{"positive number text", PositiveNumber("x"), "ten", false},
		{"one of", OneOf("x", "Delivered", "Pending"), "Pending", true},
		{"one of case", OneOf("x", "Delivered", "Pending"), "pending", false},
		{"prefixed id", PrefixedID("INV", "x"), "INV1001", true},
		{"prefixed id short", PrefixedID("INV", "x"), "INV100", false},
		{"prefixed id lower", PrefixedID("INV", "x"), "inv1", false},
		{"prefixed id other prefix", PrefixedID("INVST", "x"), "INV1001", false},
		{"max length", MaxLength(3, "x"), "abc", true},
		{"max length over", MaxLength(3, "x"), "abcd", false},
		{"max length runes", MaxLength(3, "x"), "తెలు", false},
		{"max bytes ascii", MaxBytes(3, "x"), "abc", true},
		{"max bytes multibyte", MaxBytes(3, "x"), "éé", false},
		{"starts upper", StartsUpper("x"), "Paid early", true},
		{"starts upper lower", StartsUpper("x"), "paid", false},
		{"starts upper empty", StartsUpper("x"), "", false},
		{"email", Email("x"), "ravi@dairy.in", true},
		{"email no tld", Email("x"), "ravi@dairy", false},
		{"date", Date("x"), "2024-01-10", true},
		{"date invalid", Date("x"), "2024-13-01", false},
		{"date format", Date("x"), "10/01/2024", false},
		{"password", Password("x"), "Secret123", true},
		{"password short", Password("x"), "Sec1", false},
		{"password no digit", Password("x"), "SecretPass", false},
		{"password no upper", Password("x"), "secret123", false},
		{"optional blank", Optional(Email("x")), "", true},
		{"optional set", Optional(Email("x")), "nope", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.rule(tc.value)
			if tc.ok && got != "" {
				t.Fatalf("rule(%q) expected valid, got %q", tc.value, got)
			}
			if !tc.ok && got == "" {
				t.Fatalf("rule(%q) expected a message, got none", tc.value)
			}
		})
	}
}
