package model

// Snapshot is an immutable view of every input collection the forecast
// consumes. The store builds a fresh one per invocation; the engine never
// mutates it, so a snapshot may be shared across concurrent read-only
// passes. Edits go through the store and surface in the next snapshot.
type Snapshot struct {
	Projects   []Project
	LaborCosts []LaborCostRecord
	AdminCosts []AdminCostRecord
	Occasional []OccasionalEntry
}

// Entries returns the occasional entries of the given kind.
func (s Snapshot) Entries(kind EntryKind) []OccasionalEntry {
	var out []OccasionalEntry
	for _, e := range s.Occasional {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
