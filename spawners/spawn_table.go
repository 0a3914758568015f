package spawners

import (
	"math/rand"

	"ebiten-delve/data"
)

// SpawnTable picks agent templates with probability proportional to their
// spawn weight
type SpawnTable struct {
	Entries []SpawnTableEntry
	total   int
}

// SpawnTableEntry represents a single entry in a spawn table
type SpawnTableEntry struct {
	Template *data.AgentTemplate
	Weight   int
}

// NewSpawnTable builds a table from every template with a positive weight
func NewSpawnTable(templates *data.AgentTemplateManager) *SpawnTable {
	table := &SpawnTable{}
	for _, t := range templates.Sorted() {
		if t.SpawnWeight <= 0 {
			continue
		}
		table.Entries = append(table.Entries, SpawnTableEntry{Template: t, Weight: t.SpawnWeight})
		table.total += t.SpawnWeight
	}
	return table
}

// Pick returns a random template, nil when the table is empty
func (st *SpawnTable) Pick(rng *rand.Rand) *data.AgentTemplate {
	if st.total == 0 {
		return nil
	}

	roll := rng.Intn(st.total)
	for _, entry := range st.Entries {
		if roll < entry.Weight {
			return entry.Template
		}
		roll -= entry.Weight
	}
	return nil
}
