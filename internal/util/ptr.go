package util

import "strings"

func StringPtr(v string) *string { return &v }

// CellPtr maps a spreadsheet cell to an optional value: blank cells become
// nil so downstream fallbacks can tell "missing" from a legitimate value.
func CellPtr(cell string) *string {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func Deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
