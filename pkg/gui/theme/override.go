package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override replaces individual tokens of a preset. Fields left nil keep the
// preset value. The file format is YAML, so plain JSON objects work too.
//
//	accent: "#ff79c6"
//	border: { foreground: "39", faint: true }
type Override struct {
	Accent *Token `yaml:"accent"`
	Border *Token `yaml:"border"`
	Muted  *Token `yaml:"muted"`
	Hero   *Token `yaml:"hero"`
	Reset  *Token `yaml:"reset"`
}

// UnmarshalYAML accepts either a bare color string or a token mapping.
func (t *Token) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var color string
		if err := node.Decode(&color); err != nil {
			return err
		}
		*t = Token{Foreground: color}
		return nil
	}
	type plain Token
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*t = Token(decoded)
	return nil
}

// LoadOverride reads an override file.
func LoadOverride(path string) (Override, error) {
	var o Override
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parse theme file: %w", err)
	}
	return o, nil
}

// Apply returns t with every token set in o replaced.
func (t Theme) Apply(o Override) Theme {
	if o.Accent != nil {
		t.Accent = *o.Accent
	}
	if o.Border != nil {
		t.Border = *o.Border
	}
	if o.Muted != nil {
		t.Muted = *o.Muted
	}
	if o.Hero != nil {
		t.Hero = *o.Hero
	}
	if o.Reset != nil {
		t.Reset = *o.Reset
	}
	return t
}

// Resolve builds the theme from a preset name and an optional override file.
// An unreadable or malformed override file leaves the preset untouched and is
// reported as the error alongside the usable theme.
func Resolve(name, overridePath string) (Theme, error) {
	t := Preset(name)
	if overridePath == "" {
		return t, nil
	}
	o, err := LoadOverride(overridePath)
	if err != nil {
		return t, err
	}
	return t.Apply(o), nil
}
