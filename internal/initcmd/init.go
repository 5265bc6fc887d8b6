package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/saltytine/csnap/internal/engine"
)

const starterConfig = `# csnap configuration

[render]
style = "dracula"
font = "mono"
dpi = 70
width = 800
max_lines = 1000
split_at = "\n\n"

[clipboard]
# "auto", "native", "xclip", or "wl-copy"
tool = "auto"

[shots]
max_files = 100
`

const starterProfile = `name: example
version: 1
description: Copy of the built-in defaults, edit freely
style: dracula
font: mono
dpi: 70
width: 800
line_numbers: true
max_lines: 1000
split_at: "\n\n"
`

// externalTools are the commands the pipeline may shell out to.
var externalTools = []string{"pango-view", "ansifilter", "xclip", "wl-copy"}

// Run writes starter config and profile files, then reports which
// external tools are installed. Existing files are left alone unless
// --force is passed.
func Run(args []string) error {
	force := false
	for _, arg := range args {
		if arg == "--force" {
			force = true
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("get home dir: %w", err)
	}

	configDir := filepath.Join(home, ".config", "csnap")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.toml")
	wroteConfig, err := writeIfAbsent(configPath, starterConfig, force)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	profileDir := filepath.Join(configDir, "profiles")
	if err := os.MkdirAll(profileDir, 0755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	profilePath := filepath.Join(profileDir, "example.yaml")
	wroteProfile, err := writeIfAbsent(profilePath, starterProfile, force)
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	fmt.Println("csnap init complete:")
	fmt.Printf("  config: %s%s\n", configPath, skipped(wroteConfig))
	fmt.Printf("  profiles: %s%s\n", profilePath, skipped(wroteProfile))
	fmt.Println()
	fmt.Println("external tools:")
	for _, tool := range externalTools {
		if _, err := engine.Look(tool); err != nil {
			fmt.Printf("  %-10s missing\n", tool)
		} else {
			fmt.Printf("  %-10s ok\n", tool)
		}
	}
	return nil
}

func writeIfAbsent(path, content string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, err
	}
	return true, nil
}

func skipped(wrote bool) string {
	if wrote {
		return ""
	}
	return " (exists, skipped)"
}
