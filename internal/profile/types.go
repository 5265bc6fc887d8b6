package profile

// Profile is a declarative YAML preset for snapshot rendering.
type Profile struct {
	Name        string `yaml:"name"`
	Version     int    `yaml:"version"`
	Description string `yaml:"description"`
	Style       string `yaml:"style"`
	Font        string `yaml:"font"`
	DPI         int    `yaml:"dpi"`
	Width       int    `yaml:"width"`
	LineNumbers bool   `yaml:"line_numbers"`
	MaxLines    int    `yaml:"max_lines"`
	SplitAt     string `yaml:"split_at"`
}
