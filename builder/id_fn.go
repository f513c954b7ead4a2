// SPDX-License-Identifier: MIT

package builder

import "strconv"

// IDFn maps a zero-based vertex index to a vertex id.
type IDFn func(idx int) string

// DefaultIDFn returns decimal ids: 0 → "0", 1 → "1".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns spreadsheet-column ids: 0 → "A", 25 → "Z", 26 → "AA".
func SymbolIDFn(idx int) string {
	if idx < 0 {
		return strconv.Itoa(idx)
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SymbolNumberIDFn returns an IDFn producing prefix+index ("v0", "v1", ...).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
