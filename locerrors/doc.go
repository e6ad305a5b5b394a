// Package locerrors provides structured error types for the errloc module.
//
// Import path: github.com/erraggy/errloc/locerrors
//
// The location core itself never fails. Errors only arise at the edges:
// parsing a textual path expression, looking up an identifier by name, and
// loading a VUID table. Each category has a concrete type for [errors.As]
// and a sentinel for [errors.Is].
//
// # Error Types
//
//   - [ParseError]: a malformed path expression such as "pSubmits[x"
//   - [LookupError]: a call, reference page, or field name that is not registered
//   - [ConfigError]: invalid options or an unreadable VUID table
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrLookup]: Matches any [LookupError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	loc, err := location.ParsePath(fn, ref, expr)
//	if err != nil {
//	    var perr *locerrors.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Printf("bad path at offset %d\n", perr.Offset)
//	    }
//	}
package locerrors
