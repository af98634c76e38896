// Package reorder re-projects the base file's key order onto other
// locale files.
package reorder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
)

// Reorder builds a copy of target whose keys follow base's order. Keys
// present only in target are appended after the base-ordered block in
// their original relative order. Every key-value pair of target appears
// exactly once in the result; base is not modified.
func Reorder(base, target *model.LocaleFile) *model.LocaleFile {
	out := &model.LocaleFile{
		Path:   target.Path,
		Locale: target.Locale,
		Values: make(map[string]json.RawMessage, len(target.Keys)),
	}

	inBase := make(map[string]bool, len(target.Keys))
	for _, k := range base.Keys {
		if v, ok := target.Values[k]; ok {
			out.Keys = append(out.Keys, k)
			out.Values[k] = v
			inBase[k] = true
		}
	}

	for _, k := range target.Keys {
		if !inBase[k] {
			out.Keys = append(out.Keys, k)
			out.Values[k] = target.Values[k]
		}
	}

	out.RawKeys = append([]string(nil), out.Keys...)
	return out
}

// WriteFile rewrites f at its own path. The content goes to a sibling
// temp file first and is renamed into place, so the target is either
// fully rewritten or left untouched.
func WriteFile(f *model.LocaleFile) error {
	raw, err := f.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.Path, err)
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", f.Path, err)
	}
	return nil
}
