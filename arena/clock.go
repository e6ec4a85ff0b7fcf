package arena

// growthFactor is the slab growth multiplier applied once scanning for a
// free slot fails.
const growthFactor = 1.5

// freeSlotsThreshold is the minimum free-slot fraction below which the slab
// grows instead of wrapping the cursor back to scan from 0.
const freeSlotsThreshold = 0.05

// ClockArena is a growable, contiguous slab of fixed-size slots with a
// clock-hand allocation cursor. Free slots self-identify via isFree; Alloc
// never zeroes or validates slot contents beyond that check, leaving it to
// the caller to overwrite the slot immediately after allocation.
//
// Slot references obtained from Get are invalidated by any subsequent Alloc
// that triggers a grow: callers that hold a reference across a potential
// Alloc must re-resolve via Get afterward.
type ClockArena[T any] struct {
	slots []T
	cursor int
	free int
	isFree func(*T) bool
	markFree func(*T)

	reallocCount int
}

// NewClockArena creates an arena with initialSize slots, all free. isFree
// reports whether a slot is free (by inspecting its reserved sentinel);
// markFree writes that sentinel into a slot.
func NewClockArena[T any](initialSize int, isFree func(*T) bool, markFree func(*T)) *ClockArena[T] {
	if initialSize < 1 {
		initialSize = 1
	}
	a := &ClockArena[T]{
		slots: make([]T, initialSize),
		isFree: isFree,
		markFree: markFree,
	}
	for i := range a.slots {
		a.markFree(&a.slots[i])
	}
	a.free = initialSize
	return a
}

// Len returns the current slab size (live + free slots).
func (a *ClockArena[T]) Len() int { return len(a.slots) }

// FreeCount returns the number of free slots.
func (a *ClockArena[T]) FreeCount() int { return a.free }

// LiveCount returns the number of occupied slots.
func (a *ClockArena[T]) LiveCount() int { return len(a.slots) - a.free }

// ReallocCount returns the number of times the slab has grown, surfaced by
// labelsetting.Diagnostics.
func (a *ClockArena[T]) ReallocCount() int { return a.reallocCount }

// Get returns a pointer to slot idx. Invalidated by the next Alloc that
// triggers growth.
func (a *ClockArena[T]) Get(idx int) *T { return &a.slots[idx] }

// Alloc returns the index of a free slot, marking it occupied by the
// implicit act of the caller writing real content into it (Alloc itself
// does not write; it only guarantees the slot was free at selection time).
// Implements the scan/wrap/grow allocation algorithm.
func (a *ClockArena[T]) Alloc() int {
	size := len(a.slots)

	if a.freeFraction() >= freeSlotsThreshold {
		// Step 1: scan forward from cursor.
		for i := a.cursor; i < size; i++ {
			if a.isFree(&a.slots[i]) {
				a.cursor = i + 1
				a.free--
				return i
			}
		}
		// Step 2: wrap and continue from 0.
		for i := 0; i < a.cursor; i++ {
			if a.isFree(&a.slots[i]) {
				a.cursor = i + 1
				a.free--
				return i
			}
		}
	}

	// Step 3: grow by 1.5x (at least one new slot), mark new tail free,
	// resume from the first new slot.
	return a.grow()
}

func (a *ClockArena[T]) freeFraction() float64 {
	if len(a.slots) == 0 {
		return 0
	}
	return float64(a.free) / float64(len(a.slots))
}

func (a *ClockArena[T]) grow() int {
	oldSize := len(a.slots)
	newSize := int(float64(oldSize) * growthFactor)
	if newSize <= oldSize {
		newSize = oldSize + 1
	}
	grown := make([]T, newSize)
	copy(grown, a.slots)
	for i := oldSize; i < newSize; i++ {
		a.markFree(&grown[i])
	}
	a.slots = grown
	a.free += newSize - oldSize
	a.reallocCount++

	idx := oldSize
	a.cursor = idx + 1
	a.free--
	return idx
}

// Free marks slot idx free again.
func (a *ClockArena[T]) Free(idx int) {
	a.markFree(&a.slots[idx])
	a.free++
}
