package delimiter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	perr "wordbound/internal/platform/errors"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a pack from path. The format follows the extension:
// .json, .yaml/.yml or .toml. A pack without a name takes the file's base name
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, perr.WithOp(perr.Wrapf(err, perr.ErrorCodeNotFound, "read delimiter pack %s", path), "LoadFile")
	}
	p, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Pack{}, perr.WithOp(err, "LoadFile")
	}
	if strings.TrimSpace(p.Name) == "" {
		base := filepath.Base(path)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// Parse decodes a pack in the format named by ext
func Parse(data []byte, ext string) (Pack, error) {
	var p Pack
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Pack{}, perr.Wrapf(err, perr.ErrorCodeJSON, "decode json pack")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Pack{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "decode yaml pack")
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &p); err != nil {
			return Pack{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "decode toml pack")
		}
	default:
		return Pack{}, perr.InvalidArgf("unsupported delimiter pack format %q", ext)
	}
	return p, nil
}
