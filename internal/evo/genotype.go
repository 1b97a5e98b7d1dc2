package evo

// Gene is the constraint every heritable value must satisfy. Genes carry
// value semantics: Clone returns a copy with no mutable state shared with the
// receiver, and Equal compares by content.
type Gene[G any] interface {
	Clone() G
	Equal(G) bool
}

// Individual is a fixed-length ordered sequence of genes representing one
// candidate solution. Length is set by the engine prototype and never changes.
type Individual[G Gene[G]] []G

// Clone deep-copies the individual gene by gene.
func (ind Individual[G]) Clone() Individual[G] {
	if ind == nil {
		return nil
	}
	out := make(Individual[G], len(ind))
	for i, g := range ind {
		out[i] = g.Clone()
	}
	return out
}

// Equal reports positionwise content equality.
func (ind Individual[G]) Equal(other Individual[G]) bool {
	if len(ind) != len(other) {
		return false
	}
	for i, g := range ind {
		if !g.Equal(other[i]) {
			return false
		}
	}
	return true
}
