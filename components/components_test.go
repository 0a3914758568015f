package components

import (
	"strings"
	"testing"

	"ebiten-delve/pathfind"
)

func TestTileGrid_IsWallOutsideBounds(t *testing.T) {
	g := NewTileGrid(3, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{2, 1, false},
		{-1, 0, true},
		{3, 0, true},
		{0, 2, true},
	}

	for _, tt := range tests {
		if got := g.IsWall(tt.x, tt.y); got != tt.want {
			t.Errorf("IsWall(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTileGrid_ToggleAndString(t *testing.T) {
	// Arrange
	g := NewTileGrid(3, 2)
	g.SetTile(0, 0, TileWall)

	// Act
	g.ToggleWall(0, 0)
	g.ToggleWall(1, 1)
	g.ToggleWall(7, 7)

	// Assert
	if got, want := g.String(), "   \n # \n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	walls := g.WallPositions()
	if len(walls) != 1 || walls[0] != (PathNode{X: 1, Y: 1}) {
		t.Errorf("WallPositions() = %v, want [{1 1}]", walls)
	}
}

func TestGetComponentIDByName_IgnoresCase(t *testing.T) {
	id, ok := GetComponentIDByName("agent")
	if !ok || id != Agent {
		t.Errorf("GetComponentIDByName(agent) = %v, %v", id, ok)
	}
	if _, ok := GetComponentIDByName("Inventory"); ok {
		t.Errorf("unknown component name should not resolve")
	}
	if names := ComponentNames(); len(names) != 5 || names[0] != "Agent" {
		t.Errorf("ComponentNames() = %v", names)
	}
}

func TestDescribeComponent(t *testing.T) {
	agent := NewAgentComponent(7)
	agent.Active = true
	agent.Target = pathfind.Point{X: 3, Y: 4}

	got, err := DescribeComponent(agent)
	if err != nil {
		t.Fatalf("DescribeComponent: %v", err)
	}

	for _, want := range []string{"ID=7", "Active=true", "Route=no route", "Target={3 4}"} {
		if !strings.Contains(got, want) {
			t.Errorf("description %q lacks %q", got, want)
		}
	}
	if _, err := DescribeComponent(42); err == nil {
		t.Errorf("non-struct component should fail")
	}
}
