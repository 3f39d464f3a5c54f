package burnchain

import "strings"

// PoxID identifies one fork of PoX anchor-block history: bit i records
// whether reward cycle i's anchor block was known and processed. Two nodes
// on the same PoX fork carry identical prefixes.
type PoxID []bool

// InitialPoxID returns the id every node starts from: a single set bit for
// the genesis reward cycle.
func InitialPoxID() PoxID {
	return PoxID{true}
}

// Clone returns a copy of the id.
func (p PoxID) Clone() PoxID {
	newID := make(PoxID, len(p))
	copy(newID, p)
	return newID
}

// Extend appends one reward-cycle bit and returns the extended id. The
// receiver is not modified.
func (p PoxID) Extend(anchorKnown bool) PoxID {
	newID := make(PoxID, len(p), len(p)+1)
	copy(newID, p)
	return append(newID, anchorKnown)
}

// IsDescendantOf reports whether the id extends parent, i.e. parent is a
// prefix of it.
func (p PoxID) IsDescendantOf(parent PoxID) bool {
	if len(parent) > len(p) {
		return false
	}
	for i, bit := range parent {
		if p[i] != bit {
			return false
		}
	}
	return true
}

// String returns the id as a string of 0/1 characters, one per reward
// cycle.
func (p PoxID) String() string {
	var builder strings.Builder
	for _, bit := range p {
		if bit {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}
