// Package options provides shared utilities for option validation across packages.
package options

import "fmt"

// ValidateAtMostOneSource ensures no more than one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// multiSourceMsg is the error message when multiple sources are specified.
// Specifying none is allowed; callers fall back to a built-in default.
func ValidateAtMostOneSource(multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount > 1 {
		return fmt.Errorf("%s", multiSourceMsg)
	}

	return nil
}
