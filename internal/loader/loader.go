package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
)

// Load reads and parses one locale file.
func Load(path string) (*model.LocaleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	f.Path = path
	f.Locale = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return f, nil
}

// Parse decodes a JSON object into a LocaleFile, preserving the source
// order of top-level keys.
//
// A plain unmarshal into a map silently collapses duplicate keys, which
// is exactly the information the duplicate check needs. Walking the
// decoder's token stream records every key occurrence before the
// deduplicated mapping is built; the last occurrence wins the value, as
// in standard JSON object semantics.
func Parse(raw []byte) (*model.LocaleFile, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("root is not a JSON object")
	}

	f := &model.LocaleFile{Values: make(map[string]json.RawMessage)}

	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", kt)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid value for key %q: %w", key, err)
		}

		f.RawKeys = append(f.RawKeys, key)
		if _, seen := f.Values[key]; !seen {
			f.Keys = append(f.Keys, key)
		}
		f.Values[key] = value
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON object")
	}

	return f, nil
}
