package docgen

import (
	"testing"
	"time"
)

func TestFormatMontant(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{3, "3,00"},
		{1234.5, "1234,50"},
		{10000, "10000,00"},
		{-5000, "5000,00"}, // sign is carried by wording, not digits
	}
	for _, c := range cases {
		if got := FormatMontant(c.in); got != c.want {
			t.Errorf("FormatMontant(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPourcentage(t *testing.T) {
	if got := FormatPourcentage(100); got != "100,00%" {
		t.Errorf("FormatPourcentage(100) = %q", got)
	}
}

func TestNombreEnLettres(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{17, "dix-sept"},
		{20, "vingt"},
		{21, "vingt et un"},
		{34, "trente-quatre"},
		{61, "soixante et un"},
		{71, "soixante et onze"},
		{75, "soixante-quinze"},
		{80, "quatre-vingts"},
		{81, "quatre-vingt-un"},
		{91, "quatre-vingt-onze"},
		{95, "quatre-vingt-quinze"},
		{99, "quatre-vingt-dix-neuf"},
		{100, "100"}, // documented digit fallback
		{1500, "1500"},
	}
	for _, c := range cases {
		if got := NombreEnLettres(c.in); got != c.want {
			t.Errorf("NombreEnLettres(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractVille(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12 rue de la Paix, 75002 Paris", "75002 Paris"},
		{"1 avenue Foch, 69006, Lyon", "Lyon"},
		{"Marseille", "Marseille"},
		{"", ""},
	}
	for _, c := range cases {
		if got := ExtractVille(c.in); got != c.want {
			t.Errorf("ExtractVille(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDateFR(t *testing.T) {
	d := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDateFR(d); got != "15 mars 2025" {
		t.Errorf("FormatDateFR = %q", got)
	}
}

func TestFormatHeureFR(t *testing.T) {
	cases := []struct{ in, want string }{
		{"14:00", "14h00"},
		{"9:30", "9h30"},
		{"14", "14h00"},
	}
	for _, c := range cases {
		if got := FormatHeureFR(c.in); got != c.want {
			t.Errorf("FormatHeureFR(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
