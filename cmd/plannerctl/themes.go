package main

import (
	"fmt"
	"os"

	"github.com/maheshrc27/content-planner/internal/planner"
	"gopkg.in/yaml.v3"
)

// themeFile is the YAML document read by every command that takes --file.
//
//	themes:
//	  - id: home
//	    name: Home insurance
//	    start_date: 2025-10-13
//	    end_date: 2025-10-24
type themeFile struct {
	Themes []planner.Theme `yaml:"themes"`
}

func loadThemes(path string) ([]planner.Theme, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading themes: %w", err)
	}

	var f themeFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, t := range f.Themes {
		if t.ID == "" {
			return nil, fmt.Errorf("%s: theme %d has no id", path, i+1)
		}
	}
	return f.Themes, nil
}
