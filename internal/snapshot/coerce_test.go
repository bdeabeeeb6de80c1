package snapshot

import "testing"

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "250", 250},
		{"decimal", "12.5", 12.5},
		{"negative", "-3.2", -3.2},
		{"dollar sign", "$104.7", 104.7},
		{"thousands separator", "1,204.5", 1204.5},
		{"surrounding whitespace", "  88.1  ", 88.1},
		{"empty cell", "", 0},
		{"garbage", "N/A", 0},
		{"trailing text", "12.5M", 0},
		{"lone dash", "-", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Coerce(tc.raw); got != tc.want {
				t.Fatalf("Coerce(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestCoerceNeverPanics(t *testing.T) {
	// The whole point of the policy: a bad cell defaults, it never blows up.
	for _, raw := range []string{"", " ", "$", ",", "$,", "..", "1.2.3", "\x00"} {
		_ = Coerce(raw)
	}
}
