package utils

const SiretLength = 14

// IsSiretValid checks the INSEE SIRET format: 14 digits validated by the
// Luhn algorithm.
func IsSiretValid(siret string) bool {
	if len(siret) != SiretLength {
		return false
	}

	if !isOnlyNumbers(siret) {
		return false
	}

	// Reject known invalid patterns that trick the math algorithm
	if hasAllSameDigits(siret) {
		return false
	}
	return luhnChecksum(siret)%10 == 0
}

func isOnlyNumbers(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasAllSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// luhnChecksum doubles every second digit from the right, folding results
// above 9 back into a single digit.
func luhnChecksum(s string) int {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum
}
