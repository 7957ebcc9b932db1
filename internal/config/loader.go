package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadAll reads every config the simulator needs from dir.
func LoadAll(dir string) (*CharactersConfig, *SkillTreeConfig, error) {
	var cc CharactersConfig
	var tc SkillTreeConfig
	if err := loadYAML(filepath.Join(dir, "characters.yaml"), &cc); err != nil {
		return nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "skill_tree.yaml"), &tc); err != nil {
		return nil, nil, err
	}
	return &cc, &tc, nil
}
