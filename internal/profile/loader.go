package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EmbeddedFS is set by the main package to provide embedded profile files.
// This avoids go:embed constraints on internal packages.
var EmbeddedFS *embed.FS

// LoadEmbedded loads all embedded YAML profile files.
func LoadEmbedded() ([]Profile, error) {
	if EmbeddedFS == nil {
		return nil, nil
	}

	// Try "profiles" subdir first (when embedded from root), then "." (flat)
	dir := "profiles"
	entries, err := EmbeddedFS.ReadDir(dir)
	if err != nil {
		dir = "."
		entries, err = EmbeddedFS.ReadDir(dir)
		if err != nil {
			return nil, nil
		}
	}

	var profiles []Profile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := entry.Name()
		if dir != "." {
			path = dir + "/" + entry.Name()
		}
		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read embedded profile %s: %w", entry.Name(), err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse embedded profile %s: %w", entry.Name(), err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

// LoadUserProfiles loads all YAML files from a directory.
func LoadUserProfiles(dir string) ([]Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	var profiles []Profile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read user profile %s: %w", entry.Name(), err)
		}
		p, err := Parse(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "csnap: skipping invalid profile %s: %v\n", entry.Name(), err)
			continue
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

// LoadAll loads user profiles (priority) and embedded profiles, merging by name.
func LoadAll(userDir string) ([]Profile, error) {
	user, err := LoadUserProfiles(userDir)
	if err != nil {
		return nil, err
	}

	embedded, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]bool)
	var result []Profile
	for _, p := range user {
		byName[p.Name] = true
		result = append(result, p)
	}
	for _, p := range embedded {
		if !byName[p.Name] {
			result = append(result, p)
		}
	}
	return result, nil
}

// Find returns the profile with the given name, or nil.
func Find(profiles []Profile, name string) *Profile {
	for i := range profiles {
		if profiles[i].Name == name {
			return &profiles[i]
		}
	}
	return nil
}
