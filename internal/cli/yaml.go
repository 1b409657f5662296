package cli

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	bytesType     = reflect.TypeOf([]byte(nil))
	textMarshaler = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// isOptional matches packet.Optional[T] for any T.
func isOptional(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t.NumField() != 2 {
		return false
	}
	exists, item := t.Field(0), t.Field(1)
	return exists.Name == "Exists" && exists.Type.Kind() == reflect.Bool && item.Name == "Item"
}

// toNode renders v as YAML keeping struct field order. Byte arrays become
// hex strings and absent optionals become null.
func toNode(v reflect.Value) (*yaml.Node, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		}
		v = v.Elem()
	}

	t := v.Type()
	switch {
	case t == bytesType:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: hex.EncodeToString(v.Bytes())}, nil
	case t.Implements(textMarshaler):
		b, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(b)}, nil
	case isOptional(t):
		if !v.Field(0).Bool() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		}
		return toNode(v.Field(1))
	}

	switch t.Kind() {
	case reflect.Struct:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			val, err := toNode(v.Field(i))
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: t.Field(i).Name},
				val,
			)
		}
		return n, nil
	case reflect.Slice, reflect.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for i := 0; i < v.Len(); i++ {
			val, err := toNode(v.Index(i))
			if err != nil {
				return nil, err
			}
			if val.Kind != yaml.ScalarNode {
				n.Style = 0
			}
			n.Content = append(n.Content, val)
		}
		return n, nil
	}

	n := &yaml.Node{}
	if err := n.Encode(v.Interface()); err != nil {
		return nil, err
	}
	return n, nil
}

// hexBytesHook decodes hex strings into []byte fields.
func hexBytesHook(from, to reflect.Type, data any) (any, error) {
	if to != bytesType || from.Kind() != reflect.String {
		return data, nil
	}
	b, err := hex.DecodeString(data.(string))
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", data, err)
	}
	return b, nil
}

// optionalHook lets YAML give the item of an optional directly; a present
// value means Exists.
func optionalHook(from, to reflect.Type, data any) (any, error) {
	if !isOptional(to) || data == nil {
		return data, nil
	}
	if m, ok := data.(map[string]any); ok {
		if _, ok := m["Exists"]; ok {
			return data, nil
		}
	}
	return map[string]any{"Exists": true, "Item": data}, nil
}

// decodeFields fills the struct pointed to by out from a YAML mapping.
// Unknown keys are rejected so typos do not silently encode zero values.
func decodeFields(fields map[string]any, out any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			optionalHook,
			hexBytesHook,
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return d.Decode(fields)
}
