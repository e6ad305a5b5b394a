package location

import (
	"strings"

	"github.com/erraggy/errloc/locerrors"
)

// Identifier kinds accepted by Names.
const (
	KindFuncs    = "funcs"
	KindRefPages = "refpages"
	KindFields   = "fields"
)

var (
	funcByName    = indexNames[Func](funcNames[:])
	refPageByName = indexNames[RefPage](refPageNames[:])
	fieldByName   = indexNames[Field](fieldNames[:])
)

// indexNames builds the reverse of a name table, skipping the empty
// sentinel at position zero.
func indexNames[T ~uint16](names []string) map[string]T {
	m := make(map[string]T, len(names)-1)
	for i, name := range names[1:] {
		m[name] = T(i + 1)
	}
	return m
}

// ParseFunc returns the Func registered under name.
func ParseFunc(name string) (Func, error) {
	if f, ok := funcByName[name]; ok {
		return f, nil
	}
	return FuncEmpty, &locerrors.LookupError{Kind: "func", Name: name}
}

// ParseRefPage returns the RefPage registered under name.
func ParseRefPage(name string) (RefPage, error) {
	if r, ok := refPageByName[name]; ok {
		return r, nil
	}
	return RefPageEmpty, &locerrors.LookupError{Kind: "refpage", Name: name}
}

// ParseField returns the Field registered under name.
func ParseField(name string) (Field, error) {
	if f, ok := fieldByName[name]; ok {
		return f, nil
	}
	return FieldEmpty, &locerrors.LookupError{Kind: "field", Name: name}
}

// Funcs returns every registered Func except FuncEmpty, in registry order.
func Funcs() []Func {
	return enumerate[Func](numFuncs)
}

// RefPages returns every registered RefPage except RefPageEmpty, in registry order.
func RefPages() []RefPage {
	return enumerate[RefPage](numRefPages)
}

// Fields returns every registered Field except FieldEmpty, in registry order.
func Fields() []Field {
	return enumerate[Field](numFields)
}

func enumerate[T ~uint16](n T) []T {
	out := make([]T, 0, int(n)-1)
	for v := T(1); v < n; v++ {
		out = append(out, v)
	}
	return out
}

// Kinds returns the identifier kinds accepted by Names.
func Kinds() []string {
	return []string{KindFuncs, KindRefPages, KindFields}
}

// Names returns the display name of every registered identifier of kind,
// in registry order. Kind is matched case-insensitively; an unknown kind
// returns a *locerrors.LookupError of Kind "kind".
func Names(kind string) ([]string, error) {
	switch strings.ToLower(kind) {
	case KindFuncs:
		return namesOf(Funcs()), nil
	case KindRefPages:
		return namesOf(RefPages()), nil
	case KindFields:
		return namesOf(Fields()), nil
	default:
		return nil, &locerrors.LookupError{Kind: "kind", Name: kind}
	}
}

func namesOf[T interface {
	~uint16
	String() string
}](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
