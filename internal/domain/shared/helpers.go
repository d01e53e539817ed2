package shared

import (
	"strings"
)

func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "violates unique constraint")
}

// NormalizeName remove espaços nas pontas e colapsa espaços repetidos. A caixa é preservada
// porque nomes como "HVAC" ou "iPhone" fazem parte da taxonomia.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}
