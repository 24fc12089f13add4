// Package modlist reads mod list files into the domain model.
package modlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modsentry/modsentry/internal/domain"
)

// Parser implements domain.ModListParser for plugins.txt-style lists and
// JSON manifests.
type Parser struct{}

// New creates a Parser.
func New() *Parser { return &Parser{} }

// Parse reads the file at path. A .json extension selects the manifest
// form; anything else is treated as a plugins.txt-style text list.
func (p *Parser) Parse(path string) (*domain.ModList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mod list: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseManifest(data)
	}
	return parseText(data), nil
}

// parseText reads the plugins.txt format: one plugin per line, '*' prefix
// marks an enabled plugin, '#' starts a comment. Lists written without
// stars (loadorder.txt form) treat every plugin as enabled.
func parseText(data []byte) *domain.ModList {
	lines := strings.Split(string(data), "\n")

	starred := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "*") {
			starred = true
			break
		}
	}

	list := &domain.ModList{}
	idx := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		enabled := !starred || strings.HasPrefix(line, "*")
		name := strings.TrimSpace(strings.TrimPrefix(line, "*"))
		list.Entries = append(list.Entries, domain.ModEntry{
			Name:    name,
			Enabled: enabled,
			Index:   idx,
		})
		idx++
	}
	return list
}

type manifest struct {
	Game    string            `json:"game"`
	Plugins []json.RawMessage `json:"plugins"`
}

type manifestPlugin struct {
	Name    string `json:"name"`
	Enabled *bool  `json:"enabled"`
}

// parseManifest reads the JSON manifest form. Each plugin entry is either
// a bare name string or an object with name and an optional enabled flag
// (default true).
func parseManifest(data []byte) (*domain.ModList, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing mod list manifest: %w", err)
	}

	list := &domain.ModList{Game: m.Game}
	for i, raw := range m.Plugins {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			list.Entries = append(list.Entries, domain.ModEntry{Name: name, Enabled: true, Index: i})
			continue
		}

		var p manifestPlugin
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("parsing mod list manifest: plugin %d: %w", i, err)
		}
		enabled := p.Enabled == nil || *p.Enabled
		list.Entries = append(list.Entries, domain.ModEntry{Name: p.Name, Enabled: enabled, Index: i})
	}
	return list, nil
}
