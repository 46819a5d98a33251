// Package builder provides helper types for configuring vertex label
// schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a vertex label from its ID. It must be pure: the same
// id always yields the same label.
type LabelFn func(id int) string

// DecimalLabelFn returns the decimal string of id, e.g. 0→"0", 42→"42".
func DecimalLabelFn(id int) string {
	return strconv.Itoa(id)
}

// ExcelColumnLabelFn returns the “Excel-style” column name for id,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if id < 0.
// Complexity: O(log₂₆ id).
func ExcelColumnLabelFn(id int) string {
	if id < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: id must be ≥ 0, got %d", id))
	}
	var runes []rune
	for i := id; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabelFn returns prefix + decimal id, e.g. "v0", "v1", ...
func PrefixLabelFn(prefix string) LabelFn {
	return func(id int) string {
		return prefix + strconv.Itoa(id)
	}
}

// WithDecimalLabels sets the label scheme to DecimalLabelFn.
func WithDecimalLabels() BuilderOption {
	return WithLabelScheme(DecimalLabelFn)
}

// WithExcelLabels sets the label scheme to ExcelColumnLabelFn (the default).
func WithExcelLabels() BuilderOption {
	return WithLabelScheme(ExcelColumnLabelFn)
}

// WithPrefixLabels sets the label scheme to PrefixLabelFn(prefix).
func WithPrefixLabels(prefix string) BuilderOption {
	return WithLabelScheme(PrefixLabelFn(prefix))
}
