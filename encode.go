package siteconf

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes a link as a [label, url] pair.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{l.Label, l.URL})
}

// UnmarshalJSON decodes a [label, url] pair.
func (l *Link) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("siteconf: link must be a [label, url] pair, got %d elements", len(pair))
	}
	l.Label, l.URL = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes a link as a flow sequence: [label, url].
func (l Link) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: l.Label},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: l.URL},
		},
	}, nil
}

// UnmarshalYAML decodes a [label, url] sequence.
func (l *Link) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("siteconf: line %d: link must be a [label, url] pair", value.Line)
	}
	l.Label, l.URL = pair[0], pair[1]
	return nil
}

// EncodeJSON writes the record as indented JSON.
func (c SiteConfig) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(c)
}

// EncodeYAML writes the record as YAML.
func (c SiteConfig) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeJSON reads a record written by EncodeJSON.
func DecodeJSON(r io.Reader) (SiteConfig, error) {
	var c SiteConfig
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return SiteConfig{}, fmt.Errorf("siteconf: decode json: %w", err)
	}
	return c, nil
}

// DecodeYAML reads a record written by EncodeYAML.
func DecodeYAML(r io.Reader) (SiteConfig, error) {
	var c SiteConfig
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return SiteConfig{}, fmt.Errorf("siteconf: decode yaml: %w", err)
	}
	return c, nil
}
