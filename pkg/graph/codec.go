package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Placement Serialization API
// =============================================================================

// FormatFromPath returns the serialization format implied by a file name:
// YAML for .yaml and .yml, JSON otherwise.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Marshal serializes a Placement as pretty-printed JSON or YAML.
func Marshal(p Placement, format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		return yaml.Marshal(p)
	}
	return nil, fmt.Errorf("unsupported placement format %q", format)
}

// Unmarshal deserializes a Placement and validates it.
func Unmarshal(data []byte, format string) (Placement, error) {
	var p Placement
	var err error
	switch format {
	case FormatJSON, "":
		err = json.Unmarshal(data, &p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	default:
		return Placement{}, fmt.Errorf("unsupported placement format %q", format)
	}
	if err != nil {
		return Placement{}, fmt.Errorf("unmarshal placement: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Placement{}, err
	}
	return p, nil
}

// Validate checks that every element refers to a known node.
func (p *Placement) Validate() error {
	if p.Version == 0 {
		p.Version = Version
	}
	if p.Version > Version {
		return fmt.Errorf("placement version %d is newer than supported version %d", p.Version, Version)
	}
	known := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		known[n.Name] = true
	}
	for _, list := range [][]Element{p.Elements, p.Wires} {
		for _, e := range list {
			for _, t := range e.Terminals {
				if !known[t] {
					return fmt.Errorf("element %s refers to unknown node %q", e.Name, t)
				}
			}
		}
	}
	return nil
}

// WriteFile writes a Placement to a file, choosing the format from the
// extension. The file is created with 0644 permissions.
func WriteFile(p Placement, path string) error {
	data, err := Marshal(p, FormatFromPath(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Placement from a JSON or YAML file.
func ReadFile(path string) (Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Placement{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data, FormatFromPath(path))
}
