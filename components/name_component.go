package components

import "fmt"

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{
		Name: name,
	}
}

// AgentName builds the display name of the n-th agent
func AgentName(n int) string {
	return fmt.Sprintf("agent-%d", n)
}
