package automaton

import (
	"encoding/json"
	"fmt"
)

// Definition is the serializable structural description of an automaton.
// JSON field names match the model files consumed by the CLI:
//
//	{
//	  "states": ["A", "B"],
//	  "alphabet": ["0", "1"],
//	  "transitions": {
//	    "A": {"0": "A", "1": ["B"]},
//	    "B": {"0": "B", "1": "A"}
//	  },
//	  "start_state": "A",
//	  "final_states": ["B"]
//	}
//
// A transition target may be written as a bare string (deterministic
// style) or as a list; both decode into a TargetList.
type Definition struct {
	States      []string                         `json:"states" yaml:"states"`
	Alphabet    []string                         `json:"alphabet" yaml:"alphabet"`
	Transitions map[string]map[string]TargetList `json:"transitions" yaml:"transitions"`
	Start       string                           `json:"start_state" yaml:"start_state"`
	Finals      []string                         `json:"final_states" yaml:"final_states"`
}

// TargetList is the target set of a single transition entry. It accepts
// either a single state label or a list of labels when decoding.
type TargetList []string

// UnmarshalJSON decodes either "state" or ["s1", "s2"].
func (t *TargetList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TargetList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("transition target must be a state or list of states: %w", err)
	}
	*t = TargetList(many)
	return nil
}

// MarshalJSON encodes a singleton as a bare string and anything else as
// a list, mirroring the accepted input forms.
func (t TargetList) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// UnmarshalYAML decodes either a scalar state or a sequence of states.
func (t *TargetList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*t = TargetList{single}
		return nil
	}
	var many []string
	if err := unmarshal(&many); err != nil {
		return fmt.Errorf("transition target must be a state or list of states: %w", err)
	}
	*t = TargetList(many)
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (t TargetList) MarshalYAML() (interface{}, error) {
	if len(t) == 1 {
		return t[0], nil
	}
	return []string(t), nil
}
