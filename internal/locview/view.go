// Package locview describes a location level by level for the CLI and MCP
// structured outputs.
package locview

import "github.com/erraggy/errloc/location"

// Segment is one level of a rendered path.
type Segment struct {
	Field string  `json:"field"           yaml:"field"`
	Index *uint32 `json:"index,omitempty" yaml:"index,omitempty"`
}

// View is the structured form of a location.
type View struct {
	Message  string    `json:"message"            yaml:"message"`
	Func     string    `json:"func"               yaml:"func"`
	RefPage  string    `json:"refpage,omitempty"  yaml:"refpage,omitempty"`
	Field    string    `json:"field,omitempty"    yaml:"field,omitempty"`
	Index    *uint32   `json:"index,omitempty"    yaml:"index,omitempty"`
	Depth    int       `json:"depth"              yaml:"depth"`
	Segments []Segment `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// New describes loc. Segments lists the ancestors followed by the current
// level, and is nil at the root.
func New(loc location.Location) View {
	cur := loc.Current()
	v := View{
		Message: loc.Message(),
		Func:    loc.FuncName(),
		RefPage: loc.RefPageName(),
		Field:   loc.FieldName(),
		Index:   indexOf(cur),
		Depth:   loc.Depth(),
	}
	if loc.IsRoot() {
		return v
	}

	ancestors := loc.Ancestors()
	v.Segments = make([]Segment, 0, len(ancestors)+1)
	for _, s := range append(ancestors, cur) {
		v.Segments = append(v.Segments, Segment{Field: s.Field.String(), Index: indexOf(s)})
	}
	return v
}

func indexOf(s location.Segment) *uint32 {
	if !s.HasIndex() {
		return nil
	}
	i := uint32(s.Index)
	return &i
}
