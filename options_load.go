package svgclean

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// LoadOptions reads an options file and applies it to base, which is left
// unchanged. The format follows the extension: .yaml, .yml, .toml or
// .json.
func LoadOptions(base *Options, path string) (*Options, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	patch, err := optionsJSON(d, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInput, path, err)
	}
	res, err := PatchOptions(base, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInput, path, err)
	}
	return res, nil
}

func optionsJSON(d []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.YAMLToJSON(d)
	case ".toml":
		m := map[string]any{}
		if err := toml.Unmarshal(d, &m); err != nil {
			return nil, err
		}
		return json.Marshal(m)
	case ".json":
		return d, nil
	}
	return nil, fmt.Errorf("unknown options format %q", ext)
}

// PatchOptions applies a JSON merge patch to base. Options not named by
// the patch keep their value from base, and unknown names are an error.
func PatchOptions(base *Options, patch []byte) (*Options, error) {
	if base == nil {
		base = DefaultOptions()
	}
	if len(bytes.TrimSpace(patch)) == 0 || bytes.Equal(bytes.TrimSpace(patch), []byte("null")) {
		res := *base
		return &res, nil
	}
	doc, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(merged))
	dec.DisallowUnknownFields()
	res := &Options{}
	if err := dec.Decode(res); err != nil {
		return nil, err
	}
	return res, nil
}
