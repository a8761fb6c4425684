package utils

import "testing"

func TestIsSiretValid(t *testing.T) {
	cases := []struct {
		siret string
		want  bool
	}{
		{"73282932000074", true},  // INSEE documentation example
		{"73282932000075", false}, // bad check digit
		{"7328293200007", false},  // 13 digits
		{"732829320000740", false},
		{"7328293200007a", false},
		{"00000000000000", false}, // all-same-digit pattern
		{"", false},
	}
	for _, c := range cases {
		if got := IsSiretValid(c.siret); got != c.want {
			t.Errorf("IsSiretValid(%q) = %v, want %v", c.siret, got, c.want)
		}
	}
}

func TestSafeFileName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ACME SAS", "ACME_SAS"},
		{"Café & Co. (Paris)", "Caf_Co_Paris"},
		{"", "document"},
		{"!!!", "document"},
	}
	for _, c := range cases {
		if got := SafeFileName(c.in); got != c.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	long := SafeFileName("Société avec un nom extrêmement long pour tester la troncature des fichiers générés")
	if len(long) > 50 {
		t.Errorf("SafeFileName must truncate to 50 chars, got %d", len(long))
	}
}
