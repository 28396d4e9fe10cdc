package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipehaven/internal/domain"
)

// lines accepts either a block scalar (one entry per line) or a YAML
// sequence and keeps the newline-joined form the form validator expects.
type lines string

func (l *lines) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = lines(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = lines(strings.Join(items, "\n"))
		return nil
	default:
		return fmt.Errorf("line %d: expected text or a list", node.Line)
	}
}

// draftFile is the on-disk shape of a submission for -add.
type draftFile struct {
	Title        string `yaml:"title"`
	Summary      string `yaml:"summary"`
	Ingredients  lines  `yaml:"ingredients"`
	Instructions lines  `yaml:"instructions"`
	PrepTime     string `yaml:"prepTime"`
	Servings     string `yaml:"servings"`
	Difficulty   string `yaml:"difficulty"`
	Image        string `yaml:"image"`
}

func readDraft(path string) (domain.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("reading draft: %w", err)
	}
	return parseDraft(data)
}

func parseDraft(data []byte) (domain.Draft, error) {
	var f draftFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Draft{}, fmt.Errorf("parsing draft: %w", err)
	}

	d := domain.NewDraft()
	d.Title = f.Title
	d.Summary = f.Summary
	d.Ingredients = string(f.Ingredients)
	d.Instructions = string(f.Instructions)
	d.PrepTime = f.PrepTime
	d.Servings = f.Servings
	d.Image = f.Image
	if f.Difficulty != "" {
		d.Difficulty = f.Difficulty
	}
	return d, nil
}
