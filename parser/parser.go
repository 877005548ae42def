// Package parser handles JSON and YAML import/export for automaton
// definitions. The decoded Definition is plain data; structural
// validation happens in automaton.Construct.
package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/automata-xyz/go-automata/automaton"
)

// FromJSON parses an automaton definition from JSON bytes.
func FromJSON(data []byte) (*automaton.Definition, error) {
	var def automaton.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &def, nil
}

// ToJSON serializes a definition to indented JSON.
func ToJSON(def *automaton.Definition) ([]byte, error) {
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	return data, nil
}

// FromYAML parses an automaton definition from YAML bytes.
func FromYAML(data []byte) (*automaton.Definition, error) {
	var def automaton.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &def, nil
}

// ToYAML serializes a definition to YAML.
func ToYAML(def *automaton.Definition) ([]byte, error) {
	data, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	return data, nil
}

// ReadFile loads a definition from disk, picking the decoder by file
// extension (.yaml/.yml for YAML, anything else JSON).
func ReadFile(path string) (*automaton.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}
