package jsonvalue

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestArrayFieldAsStrings(t *testing.T) {
	v, err := Parse(`{"items": [{"a": 1}, [1, 2], "text", 3, 1.5, true, false, null]}`)
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := v.TryGetObject()

	got, err := ArrayFieldAsStrings("", obj, "items")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{`{"a":1}`, `[1,2]`, "text", "3.0", "1.5", "true", "false", "null"}
	if len(got) != len(want) {
		t.Fatal("length: ", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] %q != %q", i, got[i], want[i])
		}
	}
}

func TestArrayFieldAsStringsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.json")
	if err := os.WriteFile(path, []byte(`{"names": ["pelvis", "head"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ArrayFieldAsStrings(path, nil, "names")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "pelvis" || got[1] != "head" {
		t.Error("unexpected result: ", got)
	}

	if _, err := ArrayFieldAsStrings(path, nil, "missing"); !errors.Is(err, ErrFieldNotArray) {
		t.Error("missing field: ", err)
	}
}

func TestArrayFieldAsStringsErrors(t *testing.T) {
	obj := NewObject()
	obj.Set("n", NewNumber(1))

	if _, err := ArrayFieldAsStrings("x.json", obj, "n"); !errors.Is(err, ErrAmbiguousSource) {
		t.Error("both sources: ", err)
	}
	if _, err := ArrayFieldAsStrings("", nil, "n"); !errors.Is(err, ErrNoSource) {
		t.Error("no source: ", err)
	}
	if _, err := ArrayFieldAsStrings("", obj, "n"); !errors.Is(err, ErrFieldNotArray) {
		t.Error("not array: ", err)
	}
	if _, err := ArrayFieldAsStrings(filepath.Join(t.TempDir(), "none.json"), nil, "n"); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`[1, 2]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ArrayFieldAsStrings(bad, nil, "n"); !errors.Is(err, ErrNotObject) {
		t.Error("non-object root: ", err)
	}
}
