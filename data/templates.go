package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
)

// AgentTemplate describes how one kind of agent looks
type AgentTemplate struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Terminal glyph, first rune is used
	Color       string `json:"color"`       // Color in hex format (e.g. "#00FF00")
	SpawnWeight int    `json:"spawnWeight"` // Relative chance of spawning (higher = more common)
}

// Rune returns the template's glyph, 'a' when none was given
func (t *AgentTemplate) Rune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return 'a'
}

// RGBA returns the template's parsed color
func (t *AgentTemplate) RGBA() color.RGBA {
	return ParseHexColor(t.Color)
}

// AgentTemplateManager manages all agent templates
type AgentTemplateManager struct {
	Templates map[string]*AgentTemplate
}

// NewAgentTemplateManager creates a new template manager
func NewAgentTemplateManager() *AgentTemplateManager {
	return &AgentTemplateManager{
		Templates: make(map[string]*AgentTemplate),
	}
}

// DefaultTemplates returns a manager holding the built-in agent kinds
func DefaultTemplates() *AgentTemplateManager {
	m := NewAgentTemplateManager()
	for _, t := range []AgentTemplate{
		{ID: "stalker", Name: "Stalker", Glyph: "s", Color: "#D04040", SpawnWeight: 3},
		{ID: "wisp", Name: "Wisp", Glyph: "w", Color: "#60A0FF", SpawnWeight: 1},
	} {
		m.Add(t)
	}
	return m
}

// Add stores a copy of template under its ID
func (m *AgentTemplateManager) Add(template AgentTemplate) {
	m.Templates[template.ID] = &template
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory
func (m *AgentTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single agent template from a JSON file
func (m *AgentTemplateManager) LoadTemplateFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template AgentTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return err
	}

	if err := ValidateAgentTemplate(&template); err != nil {
		return fmt.Errorf("invalid agent template in %s: %w", filePath, err)
	}

	m.Add(template)
	return nil
}

// GetTemplate returns a template by ID
func (m *AgentTemplateManager) GetTemplate(id string) (*AgentTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// Sorted returns every template ordered by ID
func (m *AgentTemplateManager) Sorted() []*AgentTemplate {
	out := make([]*AgentTemplate, 0, len(m.Templates))
	for _, t := range m.Templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ValidateAgentTemplate ensures that the template has all required fields
func ValidateAgentTemplate(template *AgentTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("agent template missing id")
	}
	if template.Name == "" {
		return fmt.Errorf("agent template '%s' missing name", template.ID)
	}
	if template.SpawnWeight < 0 {
		return fmt.Errorf("agent template '%s' has negative spawnWeight", template.ID)
	}
	return nil
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
