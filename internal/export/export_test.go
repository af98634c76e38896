package export

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/loader"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
)

func TestExportWritesBaseValues(t *testing.T) {
	base, err := loader.Parse([]byte(`{"greeting": "Hello", "farewell": "Bye", "kept": "Kept"}`))
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	report := []model.MissingKeys{
		{Path: "locales/de.json", Locale: "de", Keys: []string{"greeting", "farewell"}},
	}

	if err := Export(base, report, dir); err != nil {
		t.Fatal(err)
	}

	got, err := loader.Load(filepath.Join(dir, "de_missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Keys, []string{"greeting", "farewell"}) {
		t.Errorf("expected base-ordered missing keys, got %v", got.Keys)
	}
	if string(got.Values["greeting"]) != `"Hello"` {
		t.Errorf("expected base value copied, got %s", got.Values["greeting"])
	}
}

func TestExportCreatesDirectory(t *testing.T) {
	base, err := loader.Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "deep", "nested", "out")
	report := []model.MissingKeys{{Path: "x.json", Locale: "x", Keys: []string{"a"}}}

	if err := Export(base, report, dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x_missing.json")); err != nil {
		t.Errorf("expected export file: %v", err)
	}
}

func TestExportSkipsEmptyEntries(t *testing.T) {
	base, err := loader.Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	report := []model.MissingKeys{{Path: "ok.json", Locale: "ok", Keys: nil}}

	if err := Export(base, report, dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ok_missing.json")); !os.IsNotExist(err) {
		t.Error("expected no export file for an empty entry")
	}
}

func TestExportFailSoft(t *testing.T) {
	base, err := loader.Parse([]byte(`{"a": 1, "b": 2}`))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	// A conflicting directory makes the first write fail; the second
	// locale must still be exported.
	if err := os.Mkdir(filepath.Join(dir, "bad_missing.json"), 0755); err != nil {
		t.Fatal(err)
	}

	report := []model.MissingKeys{
		{Path: "bad.json", Locale: "bad", Keys: []string{"a"}},
		{Path: "good.json", Locale: "good", Keys: []string{"b"}},
	}

	if err := Export(base, report, dir); err == nil {
		t.Error("expected aggregated error for the failed write")
	}
	if _, err := os.Stat(filepath.Join(dir, "good_missing.json")); err != nil {
		t.Errorf("expected sibling export to succeed: %v", err)
	}
}
