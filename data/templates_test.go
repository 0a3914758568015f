package data

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#FF8000", color.RGBA{255, 128, 0, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#GG0000", color.RGBA{255, 255, 255, 255}},
		{"", color.RGBA{A: 255}},
	}

	for _, tt := range tests {
		if got := ParseHexColor(tt.in); got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadTemplatesFromDirectory(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("ghoul.json", `{"id":"ghoul","name":"Ghoul","glyph":"g","color":"#30C030","spawnWeight":2}`)
	write("notes.txt", "not a template")

	m := NewAgentTemplateManager()

	// Act
	err := m.LoadTemplatesFromDirectory(dir)

	// Assert
	if err != nil {
		t.Fatalf("LoadTemplatesFromDirectory: %v", err)
	}
	ghoul, ok := m.GetTemplate("ghoul")
	if !ok {
		t.Fatalf("ghoul template missing")
	}
	if ghoul.Rune() != 'g' || ghoul.RGBA() != (color.RGBA{0x30, 0xC0, 0x30, 255}) || ghoul.SpawnWeight != 2 {
		t.Errorf("ghoul = %+v", ghoul)
	}
	if len(m.Templates) != 1 {
		t.Errorf("loaded %d templates, want 1", len(m.Templates))
	}
}

func TestLoadTemplateFromFile_RejectsMissingName(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"id":"bad"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Act
	err := NewAgentTemplateManager().LoadTemplateFromFile(path)

	// Assert
	if err == nil {
		t.Fatalf("expected a validation error")
	}
}

func TestDefaultTemplates_SortedByID(t *testing.T) {
	sorted := DefaultTemplates().Sorted()
	if len(sorted) != 2 || sorted[0].ID != "stalker" || sorted[1].ID != "wisp" {
		t.Errorf("sorted templates = %v", sorted)
	}
	if (&AgentTemplate{}).Rune() != 'a' {
		t.Errorf("empty glyph should fall back to 'a'")
	}
}
