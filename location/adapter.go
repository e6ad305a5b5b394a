package location

// Resolver maps a location to the VUID of the rule checked there.
type Resolver interface {
	Vuid(loc Location) string
}

// ResolverFunc adapts an ordinary function to a Resolver.
type ResolverFunc func(loc Location) string

// Vuid implements Resolver.
func (f ResolverFunc) Vuid(loc Location) string {
	return f(loc)
}

// VuidAdapter pairs a location with the resolver that knows its VUID, so
// reporting code can ask for both without knowing which rule table applies.
//
// The strings returned by FuncName and Vuid are ordinary Go strings owned
// by the caller; they stay valid after the adapter is discarded.
type VuidAdapter[R Resolver] struct {
	loc      Location
	resolver R
}

// NewVuidAdapter returns an adapter for loc backed by resolver.
func NewVuidAdapter[R Resolver](loc Location, resolver R) VuidAdapter[R] {
	return VuidAdapter[R]{loc: loc, resolver: resolver}
}

// Location returns the wrapped location.
func (a VuidAdapter[R]) Location() Location {
	return a.loc
}

// FuncName returns the name of the call being validated.
func (a VuidAdapter[R]) FuncName() string {
	return a.loc.FuncName()
}

// Vuid resolves the VUID for the wrapped location.
func (a VuidAdapter[R]) Vuid() string {
	return a.resolver.Vuid(a.loc)
}

// Compile-time check that ResolverFunc implements Resolver.
var _ Resolver = ResolverFunc(nil)
