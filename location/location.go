package location

import (
	"math"

	"github.com/erraggy/errloc/internal/pathutil"
)

// Index is the position of an element within an array-typed field.
type Index uint32

// NoIndex marks a segment that does not address an array element.
const NoIndex Index = math.MaxUint32

// Segment is one ancestor level already descended through.
type Segment struct {
	Field Field
	Index Index
}

// HasIndex reports whether the segment addresses an array element.
func (s Segment) HasIndex() bool {
	return s.Index != NoIndex
}

// Location identifies the call, reference page, and field path being
// validated. The zero value is a root with no call set: an Index paired
// with FieldEmpty is ignored, so a root never renders an index suffix.
//
// Locations are values: copy them freely. Dot and DotIndex never modify
// the receiver.
type Location struct {
	// Func is the entry point being validated.
	Func Func
	// RefPage is the reference page whose rules apply. VUIDs are of the
	// form VUID-{RefPage}-{Field}-#####.
	RefPage RefPage
	// Field is the innermost field being checked, or FieldEmpty at the root.
	Field Field
	// Index is the element of Field being checked, or NoIndex.
	Index Index

	path fieldPath
}

// New returns the root location for a call. The root has no current field.
func New(fn Func, ref RefPage) Location {
	return Location{Func: fn, RefPage: ref, Field: FieldEmpty, Index: NoIndex}
}

// NewAt returns a location that already points at field (and optionally
// an element of it). Pass NoIndex for a scalar field.
//
// No check is made that index is only set on array fields.
func NewAt(fn Func, ref RefPage, field Field, index Index) Location {
	return Location{Func: fn, RefPage: ref, Field: field, Index: index}
}

// Dot descends into a scalar member of the current field.
func (l Location) Dot(field Field) Location {
	return l.DotIndex(field, NoIndex)
}

// DotIndex descends into element index of the array member field.
// The current level becomes the last ancestor, unless the receiver is a
// root with no field selected.
func (l Location) DotIndex(field Field, index Index) Location {
	next := Location{Func: l.Func, RefPage: l.RefPage, Field: field, Index: index, path: l.path}
	if l.Field != FieldEmpty {
		next.path = l.path.with(Segment{Field: l.Field, Index: l.Index})
	}
	return next
}

// Message renders the location as "vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask".
func (l Location) Message() string {
	b := pathutil.Get()
	defer pathutil.Put(b)

	b.SetPrefix(l.Func.String() + "(): ")
	for i := range l.path.len() {
		pushSegment(b, l.path.at(i))
	}
	pushSegment(b, l.Current())
	return b.String()
}

// String implements fmt.Stringer. It is the same as Message.
func (l Location) String() string {
	return l.Message()
}

func pushSegment(b *pathutil.PathBuilder, s Segment) {
	b.Push(s.Field.String())
	if s.HasIndex() {
		b.PushIndex(uint32(s.Index))
	}
}

// FuncName returns the name of the call being validated.
func (l Location) FuncName() string { return l.Func.String() }

// RefPageName returns the name of the governing reference page.
func (l Location) RefPageName() string { return l.RefPage.String() }

// FieldName returns the name of the current field.
func (l Location) FieldName() string { return l.Field.String() }

// Depth returns the number of ancestor segments above the current field.
func (l Location) Depth() int {
	return l.path.len()
}

// Ancestors returns a copy of the ancestor segments, outermost first.
// The current field is not included.
func (l Location) Ancestors() []Segment {
	out := make([]Segment, l.path.len())
	for i := range out {
		out[i] = l.path.at(i)
	}
	return out
}

// Current returns the innermost level as a segment. At the root it is
// {FieldEmpty, NoIndex} whatever Index holds.
func (l Location) Current() Segment {
	if l.Field == FieldEmpty {
		return Segment{Field: FieldEmpty, Index: NoIndex}
	}
	return Segment{Field: l.Field, Index: l.Index}
}

// IsRoot reports whether no field has been selected yet.
func (l Location) IsRoot() bool {
	return l.Field == FieldEmpty && l.path.len() == 0
}

// Equal reports whether two locations name the same call, reference page,
// and field path.
func (l Location) Equal(other Location) bool {
	if l.Func != other.Func || l.RefPage != other.RefPage ||
		l.Current() != other.Current() {
		return false
	}
	n := l.path.len()
	if n != other.path.len() {
		return false
	}
	for i := range n {
		if l.path.at(i) != other.path.at(i) {
			return false
		}
	}
	return true
}
