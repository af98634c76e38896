package model

import (
	"bytes"
	"encoding/json"
)

// LocaleFile represents one parsed locale JSON file.
type LocaleFile struct {
	Path   string // source file path
	Locale string // locale name derived from the filename, e.g. "en"

	// Keys holds the unique top-level keys in first-occurrence order.
	Keys []string
	// RawKeys holds every top-level key occurrence in source order,
	// duplicates included. Duplicate detection reads this, not Keys.
	RawKeys []string
	// Values maps each key to its raw value. Nested structure is opaque
	// and passes through byte-identical.
	Values map[string]json.RawMessage
}

// Has reports whether key is present in the file.
func (f *LocaleFile) Has(key string) bool {
	_, ok := f.Values[key]
	return ok
}

// Encode renders the file as a pretty-printed JSON object with keys
// emitted in Keys order.
func (f *LocaleFile) Encode() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, k := range f.Keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		compact.Write(kb)
		compact.WriteByte(':')
		compact.Write(f.Values[k])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Duplicate is one top-level key that appears more than once in a file.
type Duplicate struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Result statuses.
const (
	StatusOK         = "ok"
	StatusDuplicates = "duplicates"
	StatusMissing    = "missing"
	StatusSorted     = "sorted"
	StatusError      = "error"
)

// Result is the outcome of processing one file in one mode.
type Result struct {
	Path       string      `json:"path"`
	Status     string      `json:"status"`
	Duplicates []Duplicate `json:"duplicates,omitempty"`
	Missing    []string    `json:"missing,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// MissingKeys records the keys one locale file lacks relative to the base.
type MissingKeys struct {
	Path   string
	Locale string
	Keys   []string // in base key order
}

// Summary aggregates one directory run.
type Summary struct {
	FilesChecked int `json:"files_checked"`
	Findings     int `json:"findings"`
	Errors       int `json:"errors"`
}
