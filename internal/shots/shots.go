// Package shots saves rendered snapshots into a quick-access directory
// with timestamped names and bounded file count.
package shots

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Saver writes PNGs into Dir, rotating out the oldest once MaxFiles is
// exceeded. MaxFiles <= 0 disables rotation.
type Saver struct {
	Dir      string
	MaxFiles int
}

// Save writes each image as screenshot-<stamp>-<n>.png and returns the
// written paths.
func (s *Saver) Save(images [][]byte) ([]string, error) {
	dir := s.Dir
	if envDir := os.Getenv("CSNAP_SHOTS_DIR"); envDir != "" {
		dir = envDir
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create shots dir: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	var paths []string
	for i, img := range images {
		name := fmt.Sprintf("screenshot-%s-%d.png", stamp, i+1)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, img, 0644); err != nil {
			return nil, fmt.Errorf("write shot: %w", err)
		}
		paths = append(paths, path)
	}

	rotateFiles(dir, s.MaxFiles)

	return paths, nil
}

func rotateFiles(dir string, maxFiles int) {
	if maxFiles <= 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var shotFiles []os.DirEntry
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "screenshot-") && strings.HasSuffix(e.Name(), ".png") {
			shotFiles = append(shotFiles, e)
		}
	}

	if len(shotFiles) <= maxFiles {
		return
	}

	// Sort by name (timestamp prefix = chronological)
	sort.Slice(shotFiles, func(i, j int) bool {
		return shotFiles[i].Name() < shotFiles[j].Name()
	})

	toRemove := len(shotFiles) - maxFiles
	for i := 0; i < toRemove; i++ {
		os.Remove(filepath.Join(dir, shotFiles[i].Name()))
	}
}
