package signup

import "testing"

func TestFormatCardNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4111111111111111", "4111 1111 1111 1111"},
		{"4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"4111-1111-1111-1111", "4111 1111 1111 1111"},
		// Extra digits past 16 are dropped, keeping the display form at 19
		// characters.
		{"41111111111111112222", "4111 1111 1111 1111"},
		{"41", "41"},
		{"41112", "4111 2"},
		{"", ""},
		{"abcd", ""},
	}
	for _, tc := range cases {
		if got := FormatCardNumber(tc.in); got != tc.want {
			t.Errorf("FormatCardNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1227", "12/27"},
		{"12/27", "12/27"},
		{"122734", "12/27"},
		{"12", "12"},
		{"1", "1"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatExpiry(tc.in); got != tc.want {
			t.Errorf("FormatExpiry(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeCVV(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"1234", "1234"},
		{"12345", "1234"},
		{"1a2b3", "123"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeCVV(tc.in); got != tc.want {
			t.Errorf("NormalizeCVV(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCardLast4(t *testing.T) {
	if got := cardLast4("4111 1111 1111 1234"); got != "1234" {
		t.Errorf("cardLast4 = %q, want 1234", got)
	}
	if got := cardLast4("41"); got != "41" {
		t.Errorf("cardLast4 short input = %q, want 41", got)
	}
}
