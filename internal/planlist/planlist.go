// Package planlist loads the curated problem-list files a journey is
// initialized from.
package planlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhisek/leetplan/internal/state"
)

// Template is one problem as defined in a plan list, before any
// tracking state is attached.
type Template struct {
	ID           int                 `json:"id"`
	Title        string              `json:"title"`
	LeetcodeURL  string              `json:"leetcode_url,omitempty"`
	SolutionLink *state.SolutionLink `json:"solution_link,omitempty"`
	Hints        []string            `json:"hints,omitempty"`
	Solution     *state.Solution     `json:"solution,omitempty"`
	YoutubeID    string              `json:"youtube_id,omitempty"`
}

// Category is a named, ordered group of problem templates.
type Category struct {
	Name     string
	Problems []Template
}

// List is one plan definition. Category order follows the file, which
// is why Categories is a slice and not a map.
type List struct {
	Name       string
	Categories []Category
}

// Category returns the category with the given name, or nil.
func (l *List) Category(name string) *Category {
	for i := range l.Categories {
		if l.Categories[i].Name == name {
			return &l.Categories[i]
		}
	}
	return nil
}

// UnmarshalJSON decodes a plan list, preserving the category order of
// the source document. A plain map would shuffle categories and ruin
// both the initial schedule and the dashboard layout.
func (l *List) UnmarshalJSON(data []byte) error {
	var head struct {
		Name       string          `json:"name"`
		Categories json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	l.Name = head.Name
	l.Categories = nil

	dec := json.NewDecoder(bytes.NewReader(head.Categories))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read categories: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read category name: %w", err)
		}
		name := keyTok.(string)
		var problems []Template
		if err := dec.Decode(&problems); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		l.Categories = append(l.Categories, Category{Name: name, Problems: problems})
	}
	return nil
}

// Available lists the plan names (file stems) found in dir, sorted.
func Available(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads and validates the plan list named name from dir.
func Load(dir, name string) (*List, error) {
	path := filepath.Join(dir, name+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan list %s: %w", path, err)
	}
	if err := validateList(raw); err != nil {
		return nil, fmt.Errorf("plan list %s: %w", path, err)
	}
	var l List
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse plan list %s: %w", path, err)
	}
	return &l, nil
}
