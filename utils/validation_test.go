package utils

import "testing"

func TestValidateEgyptianPhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		want  bool
	}{
		{"valid 010", "01012345678", true},
		{"valid 011", "01112345678", true},
		{"valid 012", "01212345678", true},
		{"valid 015", "01512345678", true},
		{"too short", "0101234567", false},
		{"too long", "010123456789", false},
		{"invalid third digit", "01312345678", false},
		{"missing leading zero", "11012345678", false},
		{"letters", "0101234567a", false},
		{"international prefix", "+201012345678", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateEgyptianPhone(tc.phone); got != tc.want {
				t.Fatalf("ValidateEgyptianPhone(%q) = %v, want %v", tc.phone, got, tc.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "user@example.com", true},
		{"subdomain", "user@mail.example.org", true},
		{"missing at", "userexample.com", false},
		{"missing tld", "user@example", false},
		{"spaces", "user name@example.com", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateEmail(tc.email); got != tc.want {
				t.Fatalf("ValidateEmail(%q) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}
