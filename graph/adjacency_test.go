package graph

import (
	"errors"
	"testing"

	"ebiten-delve/config"
	"ebiten-delve/generation"
)

func link(left, right int) generation.Corridor {
	return generation.Corridor{LeftRoom: left, RightRoom: right}
}

func TestBuild_Queries(t *testing.T) {
	// Arrange: 0-1-2 chain plus an isolated room 3
	corridors := []generation.Corridor{link(0, 1), link(1, 2)}

	// Act
	g, err := Build(4, corridors)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Assert
	if got := g.Neighbors(1); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Neighbors(1) = %v, want [0 2]", got)
	}
	if got := g.EdgesOf(1); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("EdgesOf(1) = %v, want [0 1]", got)
	}
	if l, r := g.NodesOf(1); l != 1 || r != 2 {
		t.Errorf("NodesOf(1) = %d, %d, want 1, 2", l, r)
	}
	if !g.AreAdjacent(2, 1) {
		t.Errorf("rooms 1 and 2 should be adjacent both ways")
	}
	if g.AreAdjacent(0, 2) {
		t.Errorf("rooms 0 and 2 share no corridor")
	}
	if !g.Connected(0, 2) {
		t.Errorf("room 2 should be reachable from room 0")
	}
	if g.Connected(0, 3) {
		t.Errorf("room 3 is isolated")
	}
	if got := g.CorridorNode(1); got != 5 {
		t.Errorf("CorridorNode(1) = %d, want 5", got)
	}
	if got := g.Neighbors(3); len(got) != 0 {
		t.Errorf("Neighbors(3) = %v, want none", got)
	}
}

func TestBuild_Components(t *testing.T) {
	corridors := []generation.Corridor{link(3, 0), link(1, 4)}

	g, err := Build(5, corridors)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := g.Components()
	want := [][]int{{0, 3}, {1, 4}, {2}}
	if len(got) != len(want) {
		t.Fatalf("Components() = %v, want %v", got, want)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("Components() = %v, want %v", got, want)
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("Components() = %v, want %v", got, want)
			}
		}
	}
}

func TestBuild_RejectsUnknownRoom(t *testing.T) {
	_, err := Build(2, []generation.Corridor{link(0, 2)})

	if !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("err = %v, want ErrUnknownRoom", err)
	}
}

func TestBuild_GeneratedLevelIsOneComponent(t *testing.T) {
	gen, err := generation.NewLevelGenerator(config.DefaultLevelConfig())
	if err != nil {
		t.Fatalf("NewLevelGenerator: %v", err)
	}

	for seed := int64(1); seed <= 10; seed++ {
		gen.SetSeed(seed)
		res, err := gen.Generate()
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}

		g, err := Build(len(res.Rooms), res.Corridors)
		if err != nil {
			t.Fatalf("seed %d: Build: %v", seed, err)
		}

		if got := len(g.Components()); got != 1 {
			t.Errorf("seed %d: %d components, want 1", seed, got)
		}
	}
}
