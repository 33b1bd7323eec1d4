// Package scene owns the generated city snapshot and the generator that
// produces it. A City is built wholesale by one generation call and read
// many times by renderers and the dev server; it is never mutated
// incrementally, and partial scenes are never exposed.
package scene

import "github.com/ditharaavindi/city-generator/pkg/layout"

// City is one complete, immutable generation result.
type City struct {
	Roads     []layout.Road     `json:"roads"`
	Parks     []layout.Park     `json:"parks"`
	Fountain  *layout.Park      `json:"fountain,omitempty"`
	Buildings []layout.Building `json:"buildings"`
	Generated bool              `json:"generated"`
}

// Counts summarizes entity totals for reporting.
type Counts struct {
	Roads     int `json:"roads"`
	Parks     int `json:"parks"`
	Fountains int `json:"fountains"`
	Buildings int `json:"buildings"`
}

// Counts returns the entity totals of the snapshot.
func (c *City) Counts() Counts {
	n := Counts{
		Roads:     len(c.Roads),
		Parks:     len(c.Parks),
		Buildings: len(c.Buildings),
	}
	if c.Fountain != nil {
		n.Fountains = 1
	}
	return n
}
