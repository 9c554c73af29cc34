// ABOUTME: Ordered contributor sub-scores decoded from daily summaries.
// ABOUTME: Keys are open-ended; payload order is preserved for display.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Contributor is one named sub-score. Value is nil when upstream sent null
// or a non-integer.
type Contributor struct {
	Key   string
	Value *int
}

// Contributors keeps the order in which the keys appeared in the payload.
type Contributors []Contributor

// Get returns the value for key, if present.
func (c Contributors) Get(key string) (*int, bool) {
	for _, item := range c {
		if item.Key == key {
			return item.Value, true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes a JSON object key by key so that order survives.
func (c *Contributors) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("contributors: expected object, got %v", tok)
	}

	out := Contributors{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("contributors: expected key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("contributors: %s: %w", key, err)
		}
		out = append(out, Contributor{Key: key, Value: integerValue(raw)})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}

// MarshalJSON writes the contributors back as an object in the same order.
func (c Contributors) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if item.Value == nil {
			buf.WriteString("null")
		} else {
			fmt.Fprintf(&buf, "%d", *item.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders contributors as a mapping node in payload order.
func (c Contributors) MarshalYAML() (interface{}, error) {
	if c == nil {
		return nil, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, item := range c {
		value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if item.Value != nil {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(*item.Value)}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item.Key},
			value,
		)
	}
	return node, nil
}

func integerValue(raw json.RawMessage) *int {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	v, err := n.Int64()
	if err != nil {
		return nil
	}
	i := int(v)
	return &i
}
