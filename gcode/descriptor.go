package gcode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadDescriptor reads a descriptor from a YAML, TOML or JSON file, chosen by
// extension. The result is not validated; Locate does that.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file: %w", err)
	}

	var d Descriptor
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &d)
	case ".toml":
		_, err = toml.Decode(string(data), &d)
	case ".json":
		err = json.Unmarshal(data, &d)
	default:
		return nil, fmt.Errorf("unsupported descriptor format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode descriptor file: %w", err)
	}
	return &d, nil
}
