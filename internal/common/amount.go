package common

import (
	"fmt"
	"strconv"
	"strings"
)

// SOLDecimals is the number of decimals of native SOL (1 SOL = 10^9 lamports)
const SOLDecimals = 9

// LamportsToSOL converts lamports to a SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(lamports, SOLDecimals)
}

// SOLToLamports converts a SOL string like "1" or "0.5" to lamports without float precision loss
func SOLToLamports(sol string) (uint64, error) {
	return parseWithDecimals(sol, SOLDecimals)
}

// formatWithDecimals inserts the decimal point into an integer amount.
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals removes the decimal point from a decimal string.
// Extra fractional digits beyond decimals are truncated.
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	whole, frac, hasPoint := strings.Cut(s, ".")
	if hasPoint && strings.Contains(frac, ".") {
		return 0, fmt.Errorf("invalid decimal format: %q", s)
	}
	if whole == "" {
		whole = "0"
	}

	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else {
		frac = frac[:decimals]
	}

	// ParseUint rejects signs, so negative amounts fail here
	n, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return n, nil
}
