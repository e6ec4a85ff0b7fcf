package arena

import "github.com/aerocircuit/breitling/station"

// Score sentinels reserve unreachable score values to tag slot states
// without an extra tag field. EmptySlot < Explored < MinScore;
// every real, computed score must lie strictly above MinScore.
const (
	EmptySlot = -1e18
	Explored  = -1e17
	MinScore  = -1e16
)

// NoFragment is the PathFragment sentinel meaning "no fragment" (used only
// by a hypothetical zero-length label; in practice every live label has a
// fragment once it has survived the domination filter).
const NoFragment = -1

// Label is a dynamic-programming state: "I am at station s, having
// accumulated the following history and resources".
type Label struct {
	CurrentStation int
	VisitedRegions station.RegionSet
	VisitedStationCount int
	VisitedStations StationSet
	CurrentTime float64
	CurrentFuel float64
	Score float64
	PathFragment int
}

func labelIsFree(l *Label) bool { return l.Score == EmptySlot }

func labelMarkFree(l *Label) {
	*l = Label{Score: EmptySlot, PathFragment: NoFragment}
}

// LabelArena is the clock-hand slab allocator for Label values. Initial
// sizing follows the original LabelsArena's "start with min. 20k labels"
// convention.
type LabelArena struct {
	*ClockArena[Label]
}

// DefaultLabelArenaSize is the initial slab size, matching the original's
// LabelsArena(20'000) constructor call.
const DefaultLabelArenaSize = 20000

// NewLabelArena creates a LabelArena with initialSize slots (DefaultLabelArenaSize
// if initialSize <= 0).
func NewLabelArena(initialSize int) *LabelArena {
	if initialSize <= 0 {
		initialSize = DefaultLabelArenaSize
	}
	return &LabelArena{ClockArena: NewClockArena[Label](initialSize, labelIsFree, labelMarkFree)}
}

// Push allocates a slot and copies label into it, returning the slot index.
func (a *LabelArena) Push(label Label) int {
	idx := a.Alloc()
	*a.Get(idx) = label
	return idx
}

// MarkExplored flips a live label's slot to the Explored state: it remains
// available for domination checks but will not be re-popped from the
// best-labels cache.
func (a *LabelArena) MarkExplored(idx int) {
	a.Get(idx).Score = Explored
}

// IsExplored reports whether the label at idx is marked explored.
func (a *LabelArena) IsExplored(idx int) bool {
	return a.Get(idx).Score == Explored
}

// IsLive reports whether idx names an occupied slot (live or explored, i.e.
// not free).
func (a *LabelArena) IsLive(idx int) bool {
	return a.Get(idx).Score != EmptySlot
}
