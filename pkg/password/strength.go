// pkg/password/strength.go

package password

import "math"

// Label is a categorical strength verdict.
type Label string

const (
	VeryWeak   Label = "very weak"
	Weak       Label = "weak"
	Moderate   Label = "moderate"
	Strong     Label = "strong"
	VeryStrong Label = "very strong"
)

// Entropy thresholds in bits, evaluated highest-first. The weak/very-weak
// boundary is fixed at 20 bits.
const (
	thresholdVeryStrong = 80
	thresholdStrong     = 60
	thresholdModerate   = 40
	thresholdWeak       = 20
)

// Report is a point-in-time strength assessment of a single password.
type Report struct {
	EntropyBits    float64 `json:"entropy_bits"`
	Length         int     `json:"length"`
	ClassesPresent int     `json:"classes_present"`
	HasUpper       bool    `json:"has_upper"`
	HasLower       bool    `json:"has_lower"`
	HasDigit       bool    `json:"has_digit"`
	HasSymbol      bool    `json:"has_symbol"`
	Label          Label   `json:"label"`
	Score          int     `json:"score"`
}

// CalculateEntropy estimates the brute-force resistance of pw in bits as
// len(pw) * log2(charSpace), where charSpace is the total size of the
// character classes observed in pw. This is a coarse model: it measures the
// space the password could have been drawn from, not actual draw
// probabilities. Returns 0.0 when no recognized class is present.
func CalculateEntropy(pw string) float64 {
	hasUpper, hasLower, hasDigit, hasSymbol := scanClasses(pw)

	charSpace := 0
	if hasUpper {
		charSpace += len(Uppercase)
	}
	if hasLower {
		charSpace += len(Lowercase)
	}
	if hasDigit {
		charSpace += len(Digits)
	}
	if hasSymbol {
		charSpace += len(Symbols)
	}

	if charSpace == 0 {
		return 0.0
	}
	return float64(len([]rune(pw))) * math.Log2(float64(charSpace))
}

// AssessStrength computes the full strength report for pw. It is a total
// function: any input string, including the empty string, yields a report.
func AssessStrength(pw string) Report {
	hasUpper, hasLower, hasDigit, hasSymbol := scanClasses(pw)

	classes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			classes++
		}
	}

	entropy := CalculateEntropy(pw)
	label, score := classify(entropy)

	return Report{
		EntropyBits:    entropy,
		Length:         len([]rune(pw)),
		ClassesPresent: classes,
		HasUpper:       hasUpper,
		HasLower:       hasLower,
		HasDigit:       hasDigit,
		HasSymbol:      hasSymbol,
		Label:          label,
		Score:          score,
	}
}

func scanClasses(pw string) (hasUpper, hasLower, hasDigit, hasSymbol bool) {
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case IsSymbol(r):
			hasSymbol = true
		}
	}
	return
}

func classify(entropyBits float64) (Label, int) {
	switch {
	case entropyBits >= thresholdVeryStrong:
		return VeryStrong, 100
	case entropyBits >= thresholdStrong:
		return Strong, 80
	case entropyBits >= thresholdModerate:
		return Moderate, 60
	case entropyBits >= thresholdWeak:
		return Weak, 40
	default:
		return VeryWeak, 20
	}
}
