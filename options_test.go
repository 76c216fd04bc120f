package svgclean

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	files := map[string]string{
		"opts.yaml": "remove_title: false\ntrim_ids: false\n",
		"opts.yml":  "remove_title: false\ntrim_ids: false\n",
		"opts.toml": "remove_title = false\ntrim_ids = false\n",
		"opts.json": `{"remove_title": false, "trim_ids": false}`,
	}
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		opts, err := LoadOptions(DefaultOptions(), path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		want := DefaultOptions()
		want.RemoveTitle = false
		want.TrimIDs = false
		if *opts != *want {
			t.Errorf("%s: got %+v", name, opts)
		}
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"typo.json": `{"remove_titel": false}`,
		"opts.ini":  "remove_title=false",
		"bad.toml":  "remove_title = ",
		"type.yaml": "remove_title: [1]",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadOptions(nil, path); !errors.Is(err, ErrInput) {
			t.Errorf("%s: expected ErrInput, got %v", name, err)
		}
	}
	if _, err := LoadOptions(nil, filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrInput) {
		t.Errorf("missing file: expected ErrInput, got %v", err)
	}
}

func TestPatchOptions(t *testing.T) {
	base := &Options{TrimIDs: true}
	res, err := PatchOptions(base, []byte(`{"ungroup_defs": true}`))
	if err != nil {
		t.Fatal(err)
	}
	if !res.TrimIDs || !res.UngroupDefs || res.RemoveTitle {
		t.Errorf("got %+v", res)
	}
	if base.UngroupDefs {
		t.Errorf("base changed")
	}
	res, err = PatchOptions(base, []byte(" null "))
	if err != nil {
		t.Fatal(err)
	}
	if *res != *base || res == base {
		t.Errorf("null patch: got %+v", res)
	}
}
