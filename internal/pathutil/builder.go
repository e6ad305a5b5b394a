package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides efficient incremental path construction.
// Segments are stored as-is and the full string is only materialized
// when String() is called.
type PathBuilder struct {
	prefix   string
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// SetPrefix sets text written verbatim before the first segment,
// e.g. "vkQueueSubmit(): ".
func (p *PathBuilder) SetPrefix(prefix string) {
	p.length += len(prefix) - len(p.prefix)
	p.prefix = prefix
}

// Push adds a field segment to the path.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
	if len(p.segments) > 1 {
		p.length++ // For dot separator
	}
	p.length += len(segment)
}

// PushIndex adds an array index segment: "[0]", "[1]", etc.
// Index segments attach to the preceding field without a separator.
func (p *PathBuilder) PushIndex(i uint32) {
	seg := "[" + strconv.FormatUint(uint64(i), 10) + "]"
	p.segments = append(p.segments, seg)
	p.length += len(seg) // No dot separator for brackets
}

// Len returns the number of segments pushed so far, indices included.
func (p *PathBuilder) Len() int {
	return len(p.segments)
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.prefix = ""
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path. Only call when the path is needed.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return p.prefix
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.prefix)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if len(seg) > 0 && seg[0] == '[' {
			b.WriteString(seg)
		} else {
			b.WriteByte('.')
			b.WriteString(seg)
		}
	}
	return b.String()
}
