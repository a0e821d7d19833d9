package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the project.
type Paths struct {
	Root         string
	Config       string
	Feed         string
	Logs         string
	DropsHistory string
}

// DetectProjectRoot walks up from the current working directory looking for a
// directory that contains config.json. When none is found the working
// directory itself is the root; the agent runs fine on defaults.
func DetectProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	dir := wd
	for {
		candidate := filepath.Join(dir, "config.json")
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

// NewPaths resolves every configured path relative to root. Absolute paths
// in cfg are kept as-is.
func NewPaths(root string, cfg *Config) *Paths {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}

	return &Paths{
		Root:         root,
		Config:       filepath.Join(root, "config.json"),
		Feed:         resolve(cfg.Feed.Path),
		Logs:         resolve(cfg.Log.Dir),
		DropsHistory: filepath.Join(root, "dropsHistory"),
	}
}

// EnsureDirectories creates the log and drop-history directories, plus the
// feed file's parent, if they do not already exist.
func EnsureDirectories(p *Paths) error {
	dirs := []string{p.Logs, p.DropsHistory}
	if p.Feed != "" {
		dirs = append(dirs, filepath.Dir(p.Feed))
	}

	for _, d := range dirs {
		if d == "" {
			continue
		}
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}
	return nil
}
