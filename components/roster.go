package components

import "github.com/yohamta/donburi"

// RosterData is the ordered, bounded list of live enemy entities. Combat walks
// it in order; cleanup compacts it.
type RosterData struct {
	Enemies      []donburi.Entity
	Capacity     int
	CleanupTimer float64
}

// Full reports whether another enemy may be spawned.
func (r *RosterData) Full() bool {
	return len(r.Enemies) >= r.Capacity
}

var Roster = donburi.NewComponentType[RosterData]()
