package location

import "slices"

// inlinePathCap covers the usual barrier and submit nesting depths without
// allocating.
const inlinePathCap = 3

// fieldPath is the ancestor sequence of a Location. The first
// inlinePathCap segments live in a fixed array so copying a Location
// copies them; deeper paths move everything to spill.
//
// A fieldPath is never mutated after it is stored in a Location. with
// returns a new value, and a spilled slice is clipped before appending so
// siblings derived from the same parent never share a backing array slot.
type fieldPath struct {
	inline [inlinePathCap]Segment
	n      uint8
	spill  []Segment
}

func (p fieldPath) len() int {
	if p.spill != nil {
		return len(p.spill)
	}
	return int(p.n)
}

func (p fieldPath) at(i int) Segment {
	if p.spill != nil {
		return p.spill[i]
	}
	return p.inline[i]
}

func (p fieldPath) with(s Segment) fieldPath {
	switch {
	case p.spill != nil:
		p.spill = append(slices.Clip(p.spill), s)
	case int(p.n) < inlinePathCap:
		p.inline[p.n] = s
		p.n++
	default:
		spill := make([]Segment, 0, 2*inlinePathCap)
		spill = append(spill, p.inline[:p.n]...)
		p.spill = append(spill, s)
		p.inline = [inlinePathCap]Segment{}
		p.n = 0
	}
	return p
}
