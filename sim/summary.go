package sim

import (
	"fmt"
	"io"
	"sort"

	"ebiten-delve/components"
)

// Summary describes the session's level in a few short lines
func (s *Session) Summary() []string {
	g := s.Level.Graph()
	return []string{
		fmt.Sprintf("seed %d, %dx%d tiles", s.Seed, s.Level.Tiles().Width, s.Level.Tiles().Height),
		fmt.Sprintf("%d rooms, %d corridors, %d connected part(s)", g.RoomCount(), g.CorridorCount(), len(g.Components())),
		fmt.Sprintf("generated in %d attempt(s)", s.Result.Attempts),
		fmt.Sprintf("%d agents, exit at %d,%d", len(s.Spawns.Agents), s.Spawns.Exit.X, s.Spawns.Exit.Y),
	}
}

// Inspect writes every entity with the fields of each of its components
func (s *Session) Inspect(w io.Writer) error {
	names := components.ComponentNames()
	entities := s.World.GetAllEntities()

	for _, entity := range entities {
		tags := make([]string, 0, len(entity.Tags))
		for tag := range entity.Tags {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		if _, err := fmt.Fprintf(w, "entity %d %v\n", entity.ID, tags); err != nil {
			return err
		}

		for _, name := range names {
			id, _ := components.GetComponentIDByName(name)
			comp, ok := s.World.GetComponent(entity.ID, id)
			if !ok {
				continue
			}
			desc, err := components.DescribeComponent(comp)
			if err != nil {
				return fmt.Errorf("entity %d %s: %w", entity.ID, name, err)
			}
			if _, err := fmt.Fprintf(w, "  %s: %s\n", name, desc); err != nil {
				return err
			}
		}
	}
	return nil
}
