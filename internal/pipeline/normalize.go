package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"billdict/internal/util"
)

var (
	// Maine formats bill numbers as "L.D. 1134 (S.P. 461)"; the parenthetical
	// is a companion-chamber reference and must be discarded, not merged.
	reMaineLD = regexp.MustCompile(`^L\.D\.?\s*(\d+)`)

	reParenthetical = regexp.MustCompile(`\(.*?\)`)
	reSpaces        = regexp.MustCompile(`\s+`)
	rePrefixNumber  = regexp.MustCompile(`^([A-Z]+)0*(\d+)`)
	reFourDigits    = regexp.MustCompile(`\d{4}`)
)

// NormalizeBillNumber maps a raw, human-entered bill identifier to the
// canonical form used as a LegiScan join key: uppercase letter prefix directly
// followed by digits, no separators, no leading zeros.
//
//	"S.350"                -> "S350"
//	"H.B. 229"             -> "HB229"
//	"S.B.0009"             -> "SB9"
//	"L.D. 1134 (S.P. 461)" -> "LD1134"
//
// Input that matches no known pattern passes through cleaned but otherwise
// as-is; nil stays nil.
func NormalizeBillNumber(billName *string) *string {
	if billName == nil {
		return nil
	}

	if m := reMaineLD.FindStringSubmatch(*billName); m != nil {
		n, _ := strconv.Atoi(m[1])
		return util.StringPtr("LD" + strconv.Itoa(n))
	}

	normalized := strings.ToUpper(*billName)
	normalized = reParenthetical.ReplaceAllString(normalized, "")
	normalized = strings.ReplaceAll(normalized, ".", "")
	normalized = reSpaces.ReplaceAllString(normalized, "")

	if m := rePrefixNumber.FindStringSubmatch(normalized); m != nil {
		normalized = m[1] + m[2]
	}

	return util.StringPtr(strings.TrimSpace(normalized))
}

// ExtractYear pulls the first four-digit run out of a date-like string, e.g.
// "01/19/2025" -> 2025. Missing or yearless input yields the fallback. This
// is deliberately not a date parse; the export's date column is free text.
func ExtractYear(statusDate *string, fallbackYear int) int {
	if statusDate == nil {
		return fallbackYear
	}
	if m := reFourDigits.FindString(*statusDate); m != "" {
		year, _ := strconv.Atoi(m)
		return year
	}
	return fallbackYear
}
