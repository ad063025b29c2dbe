package params

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes the mapping as a YAML document, in order.
func Encode(w io.Writer, m *Mapping) (err error) {
	node, err := ToNode(m)
	if err != nil {
		return
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err = encoder.Encode(node)
	if err != nil {
		return
	}
	err = encoder.Close()
	return
}

// ToNode converts the variant into a yaml node.
func ToNode(value Value) (node *yaml.Node, err error) {
	switch v := value.(type) {
	case *Mapping:
		node = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		v.Each(func(entry Entry) bool {
			var child *yaml.Node
			child, err = ToNode(entry.Value)
			if err != nil {
				return false
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key}
			node.Content = append(node.Content, key, child)
			return true
		})
	case Sequence:
		node = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, element := range v {
			var child *yaml.Node
			child, err = ToNode(element)
			if err != nil {
				return
			}
			node.Content = append(node.Content, child)
		}
	case Scalar:
		node = &yaml.Node{}
		err = node.Encode(v.V)
	default:
		node = &yaml.Node{}
		err = node.Encode(nil)
	}
	return
}
