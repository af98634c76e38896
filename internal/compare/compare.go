// Package compare implements the key-set checks: duplicate top-level
// keys within one file and keys missing relative to the base file.
package compare

import (
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
)

// Duplicates returns the keys that occur more than once at the top level
// of f, in order of first occurrence.
func Duplicates(f *model.LocaleFile) []model.Duplicate {
	counts := make(map[string]int, len(f.RawKeys))
	for _, k := range f.RawKeys {
		counts[k]++
	}

	var dups []model.Duplicate
	for _, k := range f.Keys {
		if counts[k] > 1 {
			dups = append(dups, model.Duplicate{Key: k, Count: counts[k]})
		}
	}
	return dups
}

// Missing returns the keys present in base but absent from other, in
// base key order. Only base-minus-other is computed; keys the other
// file adds on top of the base are not findings.
func Missing(base, other *model.LocaleFile) []string {
	var missing []string
	for _, k := range base.Keys {
		if !other.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}
