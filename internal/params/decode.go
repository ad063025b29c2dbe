package params

import (
	"errors"
	"io"

	. "github.com/dball/riveter/internal/types"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML or JSON document whose root is a mapping, preserving key order.
// An empty document is an empty mapping, and keys may not repeat at any depth.
func Decode(r io.Reader) (m *Mapping, err error) {
	var doc yaml.Node
	err = yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		m = NewMapping()
		err = nil
		return
	}
	if err != nil {
		return
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	value, err := fromNode(root)
	if err != nil {
		return
	}
	m, ok := value.(*Mapping)
	if !ok {
		err = NewError("params.notMapping", "line", root.Line)
	}
	return
}

func fromNode(node *yaml.Node) (value Value, err error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			value = Scalar{}
			return
		}
		value, err = fromNode(node.Content[0])
	case yaml.AliasNode:
		value, err = fromNode(node.Alias)
	case yaml.SequenceNode:
		seq := make(Sequence, len(node.Content))
		for i, child := range node.Content {
			seq[i], err = fromNode(child)
			if err != nil {
				return
			}
		}
		value = seq
	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				err = NewError("params.invalidKey", "line", key.Line, "column", key.Column)
				return
			}
			if m.Has(key.Value) {
				err = NewError("params.duplicateKey", "key", key.Value, "line", key.Line)
				return
			}
			var child Value
			child, err = fromNode(node.Content[i+1])
			if err != nil {
				return
			}
			m.Set(key.Value, child)
		}
		value = m
	case yaml.ScalarNode:
		var v any
		err = node.Decode(&v)
		if err != nil {
			return
		}
		value = Scalar{V: v}
	default:
		err = NewError("params.invalidNode", "kind", node.Kind, "line", node.Line)
	}
	return
}
