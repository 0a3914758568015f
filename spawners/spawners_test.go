package spawners

import (
	"math/rand"
	"testing"

	"ebiten-delve/components"
	"ebiten-delve/data"
	"ebiten-delve/ecs"
	"ebiten-delve/level"
	"ebiten-delve/pathfind"
	"ebiten-delve/systems"
)

func TestSpawnTable_PicksByWeight(t *testing.T) {
	// Arrange
	templates := data.NewAgentTemplateManager()
	templates.Add(data.AgentTemplate{ID: "heavy", Name: "Heavy", SpawnWeight: 9})
	templates.Add(data.AgentTemplate{ID: "light", Name: "Light", SpawnWeight: 1})
	templates.Add(data.AgentTemplate{ID: "never", Name: "Never", SpawnWeight: 0})
	table := NewSpawnTable(templates)
	rng := rand.New(rand.NewSource(7))

	// Act
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[table.Pick(rng).ID]++
	}

	// Assert
	if len(table.Entries) != 2 {
		t.Fatalf("table has %d entries, want 2", len(table.Entries))
	}
	if counts["never"] != 0 {
		t.Errorf("zero-weight template was picked %d times", counts["never"])
	}
	if counts["heavy"] < 800 || counts["light"] < 50 {
		t.Errorf("counts = %v, want roughly 9:1", counts)
	}
}

func TestSpawnTable_EmptyPicksNothing(t *testing.T) {
	table := NewSpawnTable(data.NewAgentTemplateManager())
	if got := table.Pick(rand.New(rand.NewSource(1))); got != nil {
		t.Errorf("Pick on empty table = %v", got)
	}
}

func TestPopulate_CreatesObserverExitAndAgents(t *testing.T) {
	// Arrange
	world := ecs.NewWorld()
	spawner := NewEntitySpawner(world, data.DefaultTemplates(), nil)
	spawns := level.Spawns{
		Player: pathfind.Point{X: 2, Y: 2},
		Exit:   pathfind.Point{X: 4, Y: 4},
		Agents: []pathfind.Point{{X: 10, Y: 2}, {X: 11, Y: 3}},
	}

	// Act
	observer := spawner.Populate(spawns, rand.New(rand.NewSource(1)))

	// Assert
	if !world.HasComponent(observer.ID, components.Observer) {
		t.Errorf("observer has no observer component")
	}
	if got := world.GetEntitiesWithTag(TagExit); len(got) != 1 {
		t.Errorf("got %d exits, want 1", len(got))
	}

	agents := world.GetEntitiesWithTag(systems.TagAgent)
	if len(agents) != 2 {
		t.Fatalf("got %d agents, want 2", len(agents))
	}
	for i, e := range agents {
		comp, _ := world.GetComponent(e.ID, components.Agent)
		if id := comp.(*components.AgentComponent).ID; id != pathfind.AgentID(i+1) {
			t.Errorf("agent %d has id %d", i, id)
		}
		pos, _ := world.GetComponent(e.ID, components.Position)
		if tile := pos.(*components.PositionComponent).Tile(); tile != spawns.Agents[i] {
			t.Errorf("agent %d at %v, want %v", i, tile, spawns.Agents[i])
		}
	}
}
