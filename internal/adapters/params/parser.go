package params

import (
	"encoding/json"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// errNotMapping is returned when the parameters document is not a mapping.
var errNotMapping = zerr.New("parameters document must be a mapping")

// scalar is a non-string YAML scalar kept in its source spelling, so that
// "1.0" stays "1.0" and "0x10" stays "0x10".
type scalar string

// MarshalJSON emits the scalar bare when its text is valid JSON and quoted
// otherwise.
func (s scalar) MarshalJSON() ([]byte, error) {
	if json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	return json.Marshal(string(s))
}

// MarshalYAML emits the scalar untagged so it resolves to its original type.
func (s scalar) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: string(s)}, nil
}

// scalarParser is a koanf parser that decodes YAML without converting
// scalars through Go numbers or times.
type scalarParser struct{}

func (scalarParser) Unmarshal(b []byte) (map[string]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return map[string]any{}, nil
	}
	v := decodeNode(doc.Content[0])
	if v == nil {
		return map[string]any{}, nil
	}
	out, ok := v.(map[string]any)
	if !ok {
		return nil, errNotMapping
	}
	return out, nil
}

func (scalarParser) Marshal(m map[string]any) ([]byte, error) {
	return yaml.Marshal(m)
}

func decodeNode(n *yaml.Node) any {
	switch n.Kind {
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			out[n.Content[i].Value] = decodeNode(n.Content[i+1])
		}
		return out
	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		for i, c := range n.Content {
			out[i] = decodeNode(c)
		}
		return out
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return n.Value
		case "!!null":
			return nil
		}
		return scalar(n.Value)
	}
	return nil
}
