// Package export writes per-locale missing-key files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
)

// Export writes one <locale>_missing.json per report entry into dir,
// creating dir if needed. Each exported file is a flat object mapping
// every missing key to the base file's value for it, so translators see
// the source text they need to translate.
//
// A write failure for one locale does not stop the others; all failures
// come back joined in one error.
func Export(base *model.LocaleFile, report []model.MissingKeys, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export directory %s: %w", dir, err)
	}

	var errs *multierror.Error
	for _, ent := range report {
		if len(ent.Keys) == 0 {
			continue
		}

		out := &model.LocaleFile{Values: make(map[string]json.RawMessage, len(ent.Keys))}
		for _, k := range ent.Keys {
			out.Keys = append(out.Keys, k)
			out.Values[k] = base.Values[k]
		}

		raw, err := out.Encode()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("encode %s: %w", ent.Path, err))
			continue
		}

		path := filepath.Join(dir, ent.Locale+"_missing.json")
		if err := os.WriteFile(path, raw, 0644); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		fmt.Printf("Exported missing keys to %s\n", path)
	}
	return errs.ErrorOrNil()
}
