package docgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMontant renders a monetary amount with exactly two decimals and a
// comma separator ("1234,56"). The sign is dropped: legal prose carries it
// as "bénéfice"/"perte" wording, never as a minus sign.
func FormatMontant(montant float64) string {
	s := strconv.FormatFloat(math.Abs(montant), 'f', 2, 64)
	return strings.Replace(s, ".", ",", 1)
}

// FormatPourcentage renders a percentage with the same decimal convention.
func FormatPourcentage(pct float64) string {
	return FormatMontant(pct) + "%"
}

var unites = []string{
	"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

var dizaines = []string{
	"", "", "vingt", "trente", "quarante", "cinquante",
	"soixante", "soixante-dix", "quatre-vingt", "quatre-vingt-dix",
}

// NombreEnLettres converts integers 0-99 to French words for legal prose.
// Numbers outside that range fall back to digit rendering; the statuts and
// PV templates only spell out small counts, so the limitation is accepted.
func NombreEnLettres(n int) string {
	if n < 0 || n >= 100 {
		return strconv.Itoa(n)
	}
	if n == 0 {
		return "zéro"
	}
	if n < 20 {
		return unites[n]
	}

	d := n / 10
	u := n % 10
	if u == 0 {
		if n == 80 {
			return "quatre-vingts"
		}
		return dizaines[d]
	}

	// 70-79 and 90-99 compose on the lower ten ("soixante" + "onze"...).
	if d == 7 || d == 9 {
		if d == 7 && u == 1 {
			return "soixante et onze"
		}
		return dizaines[d-1] + "-" + unites[10+u]
	}
	if u == 1 {
		// "et un" for 21-61, but 81 hyphenates: "quatre-vingt-un".
		if d == 8 {
			return dizaines[d] + "-" + unites[u]
		}
		return dizaines[d] + " et un"
	}
	return dizaines[d] + "-" + unites[u]
}

// ExtractVille returns the last comma-separated segment of a free-text
// address, used for the "Fait à <ville>" boilerplate. Empty input yields
// an empty string.
func ExtractVille(adresse string) string {
	if adresse == "" {
		return ""
	}
	segments := strings.Split(adresse, ",")
	return strings.TrimSpace(segments[len(segments)-1])
}

var moisFR = []string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateFR renders a date as French legal prose, e.g. "15 mars 2025".
func FormatDateFR(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), moisFR[t.Month()-1], t.Year())
}

// FormatHeureFR converts a stored "HH:MM" time to the "HHhMM" convention
// used in minutes. Missing minutes become "00".
func FormatHeureFR(heure string) string {
	h, m, ok := strings.Cut(heure, ":")
	if !ok || m == "" {
		m = "00"
	}
	return h + "h" + m
}
