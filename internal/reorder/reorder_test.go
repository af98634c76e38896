package reorder

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/loader"
	"github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/model"
)

func parse(t *testing.T, src string) *model.LocaleFile {
	t.Helper()
	f, err := loader.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestReorderFollowsBaseOrder(t *testing.T) {
	base := parse(t, `{"a": 1, "b": 2, "c": 3}`)
	target := parse(t, `{"c": 3, "a": 1}`)

	got := Reorder(base, target)
	if !reflect.DeepEqual(got.Keys, []string{"a", "c"}) {
		t.Errorf(`expected keys [a c], got %v`, got.Keys)
	}
	if string(got.Values["a"]) != "1" || string(got.Values["c"]) != "3" {
		t.Errorf("expected target values kept, got %v", got.Values)
	}
}

func TestReorderKeepsEveryTargetKey(t *testing.T) {
	base := parse(t, `{"a": 1, "b": 2}`)
	target := parse(t, `{"z": 26, "b": 2, "x": 24, "a": 1}`)

	got := Reorder(base, target)

	if len(got.Keys) != len(target.Keys) {
		t.Fatalf("expected %d keys, got %d", len(target.Keys), len(got.Keys))
	}
	for _, k := range target.Keys {
		if !got.Has(k) {
			t.Errorf("key %q dropped by reorder", k)
		}
	}
}

func TestReorderAppendsExtraKeysInTargetOrder(t *testing.T) {
	base := parse(t, `{"a": 1}`)
	target := parse(t, `{"z": 26, "a": 1, "m": 13}`)

	got := Reorder(base, target)
	want := []string{"a", "z", "m"}
	if !reflect.DeepEqual(got.Keys, want) {
		t.Errorf("expected %v, got %v", want, got.Keys)
	}
}

func TestReorderIdempotent(t *testing.T) {
	base := parse(t, `{"a": 1, "b": 2, "c": 3}`)
	target := parse(t, `{"a": "x", "b": "y", "c": "z"}`)

	once := Reorder(base, target)
	twice := Reorder(base, once)

	rawOnce, err := once.Encode()
	if err != nil {
		t.Fatal(err)
	}
	rawTwice, err := twice.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if string(rawOnce) != string(rawTwice) {
		t.Errorf("expected identical output, got\n%s\nvs\n%s", rawOnce, rawTwice)
	}
}

func TestReorderDoesNotMutateBase(t *testing.T) {
	base := parse(t, `{"a": 1, "b": 2}`)
	target := parse(t, `{"b": 2, "c": 3}`)

	before := append([]string(nil), base.Keys...)
	Reorder(base, target)
	if !reflect.DeepEqual(base.Keys, before) {
		t.Errorf("base keys changed: %v", base.Keys)
	}
}

func TestWriteFileRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.json")
	if err := os.WriteFile(path, []byte(`{"b": "zwei", "a": "eins"}`), 0644); err != nil {
		t.Fatal(err)
	}

	base := parse(t, `{"a": 1, "b": 2}`)
	target, err := loader.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(Reorder(base, target)); err != nil {
		t.Fatal(err)
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after rename")
	}

	got, err := loader.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Keys, []string{"a", "b"}) {
		t.Errorf("expected keys [a b], got %v", got.Keys)
	}
	if string(got.Values["a"]) != `"eins"` {
		t.Errorf("expected value preserved, got %s", got.Values["a"])
	}
}

func TestWriteFilePreservesNestedValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fr.json")
	src := `{"b": {"deep": [1, 2, {"x": null}]}, "a": "un"}`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	base := parse(t, `{"a": 1, "b": 2}`)
	target, err := loader.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(Reorder(base, target)); err != nil {
		t.Fatal(err)
	}

	got, err := loader.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	var deep struct {
		Deep []any `json:"deep"`
	}
	if err := json.Unmarshal(got.Values["b"], &deep); err != nil {
		t.Fatalf("nested value corrupted: %v", err)
	}
	if len(deep.Deep) != 3 {
		t.Errorf("expected 3 nested elements, got %v", deep.Deep)
	}
}
