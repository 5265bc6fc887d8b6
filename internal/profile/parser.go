package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse parses YAML bytes into a Profile struct.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks required fields and value ranges.
func Validate(p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("validate profile: missing 'name'")
	}
	if p.DPI < 0 {
		return fmt.Errorf("validate profile %q: negative 'dpi'", p.Name)
	}
	if p.Width < 0 {
		return fmt.Errorf("validate profile %q: negative 'width'", p.Name)
	}
	if p.MaxLines < 0 {
		return fmt.Errorf("validate profile %q: negative 'max_lines'", p.Name)
	}
	return nil
}
