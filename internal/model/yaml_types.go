package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a sequence of names or a single
// space-separated string.
func (w *Words) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		*w = Words(strings.Fields(str))

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*w = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list of names, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML emits a single name as a scalar and anything else as a list.
func (w Words) MarshalYAML() (any, error) {
	if len(w) == 1 {
		return w[0], nil
	}

	return []string(w), nil
}
