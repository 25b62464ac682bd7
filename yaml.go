package twodict

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = &TwoDict[string]{}
	_ yaml.Unmarshaler = &TwoDict[string]{}
)

// MarshalYAML builds a YAML mapping node holding the logical entries in
// insertion order. Going through an explicit node keeps the member order;
// encoding a plain map would lose it.
func (d *TwoDict[T]) MarshalYAML() (any, error) {
	if d == nil {
		return nil, nil
	}

	node := yaml.Node{
		Kind: yaml.MappingNode,
	}

	for key, value := range d.FromOldest() {
		keyNode := &yaml.Node{}
		// Encoding the key into its own node picks up the right tag
		// for whatever type T happens to be.
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return &node, nil
}

// UnmarshalYAML loads a YAML mapping, assigning each member through Set
// in document order. A zero-value dict is initialized on the way in.
func (d *TwoDict[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("twodict: cannot unmarshal %s into a twodict, mapping required", value.Tag)
	}

	d.ensureInit(len(value.Content) / 2)

	for index := 0; index < len(value.Content); index += 2 {
		var key T
		if err := value.Content[index].Decode(&key); err != nil {
			return err
		}

		var val T
		if err := value.Content[index+1].Decode(&val); err != nil {
			return err
		}

		d.Set(key, val)
	}

	return nil
}
