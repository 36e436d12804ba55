// Package builder provides ID schemes used to label generated vertices.
package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure and deterministic: the same idx always yields the same string.
// Implementations panic on negative indices (programmer error).
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA", 27→"AB".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs labels vertices with letters: "A".."Z", then "AA", "AB", ...
// so graphs of any size stay addressable by letter.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// IDScheme resolves a scheme name used by configuration files and CLI flags:
// "decimal" (default), "letters", or "prefix:<p>" (e.g. "prefix:v").
// Unknown names return false.
func IDScheme(name string) (IDFn, bool) {
	switch {
	case name == "" || name == "decimal":
		return DefaultIDFn, true
	case name == "letters":
		return ExcelColumnIDFn, true
	case strings.HasPrefix(name, idSchemePrefix) && len(name) > len(idSchemePrefix):
		return SymbolNumberIDFn(strings.TrimPrefix(name, idSchemePrefix)), true
	default:
		return nil, false
	}
}

const idSchemePrefix = "prefix:"
