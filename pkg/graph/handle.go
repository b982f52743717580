package graph

import "fmt"

// Handle identifies a node by its position in the Graph that produced it.
// Handles are copyable, comparable with ==, and usable as map keys. The only
// way to obtain a Handle is from a Graph append, so every Handle a caller
// holds is valid for the Graph that issued it. Using a Handle against a
// different Graph is a caller error and is not detected.
type Handle struct {
	pos int
}

// Before reports whether h was appended before other.
func (h Handle) Before(other Handle) bool {
	return h.pos < other.pos
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d", h.pos)
}

// HandleSet is a set of handles, used to select the variables a derivative
// is taken with respect to.
type HandleSet map[Handle]bool

func NewHandleSet(handles ...Handle) HandleSet {
	set := make(HandleSet, len(handles))
	for _, h := range handles {
		set[h] = true
	}
	return set
}

func (s HandleSet) Contains(h Handle) bool {
	return s[h]
}
