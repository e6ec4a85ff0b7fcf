package arena

import "math/bits"

// stationSetWords is the fixed word count backing a StationSet: 512 stations
// at 64 bits/word = 8 words.
const stationSetWords = 8

// StationSetCapacity is the largest station index a StationSet can represent.
const StationSetCapacity = stationSetWords * 64

// StationSet is a fixed-width bit set with one bit per station, copied
// bodily between parent and child labels.
type StationSet [stationSetWords]uint64

// Set marks station s as visited.
func (s *StationSet) Set(station int) {
	s[station/64] |= 1 << uint(station%64)
}

// Has reports whether station is marked visited.
func (s StationSet) Has(station int) bool {
	return s[station/64]&(1<<uint(station%64)) != 0
}

// Count returns the number of visited stations (population count).
func (s StationSet) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Union returns the bitwise OR of s and other.
func (s StationSet) Union(other StationSet) StationSet {
	var out StationSet
	for i := range s {
		out[i] = s[i] | other[i]
	}
	return out
}

// Contains reports whether s is a superset of other (s ⊇ other).
func (s StationSet) Contains(other StationSet) bool {
	for i := range s {
		if other[i]&^s[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether s and other have exactly the same bits set.
func (s StationSet) Equal(other StationSet) bool {
	return s == other
}
