// Package project discovers a directory of equation documents and its
// optional lineq.json settings file.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConfigFile is the name of the optional settings file at the project root.
const ConfigFile = "lineq.json"

// Config holds the settings a project may override.
type Config struct {
	// Extension is the file extension equation documents are recognized by.
	Extension string `json:"extension,omitempty"`
	// Tolerance bounds the residual accepted when checking solutions; zero
	// selects the solver default.
	Tolerance float64 `json:"tolerance,omitempty"`
}

// Project is a directory tree of equation documents.
type Project struct {
	RootDir   string
	Config    Config
	Documents []string
}

// Load discovers a project rooted in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom discovers a project rooted at rootDir: it reads lineq.json when
// present and enumerates every equation document under the root.
func LoadFrom(rootDir string) (*Project, error) {
	proj := &Project{
		RootDir: rootDir,
		Config:  Config{Extension: ".eqn"},
	}

	configPath := filepath.Join(rootDir, ConfigFile)
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &proj.Config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
		if proj.Config.Extension == "" {
			proj.Config.Extension = ".eqn"
		}
	}

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && info.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == proj.Config.Extension {
			proj.Documents = append(proj.Documents, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", rootDir, err)
	}

	sort.Strings(proj.Documents)
	return proj, nil
}
