// Package options holds option-validation helpers shared by the packages
// that take exactly one input source through functional options.
package options

import "fmt"

// ValidateSingleInputSource checks that exactly one of the given source
// flags is set. Each flag reports whether the caller configured that input.
// Zero set flags yields an error with noSourceMsg, more than one with
// multiSourceMsg.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return fmt.Errorf("%s", noSourceMsg)
	case count > 1:
		return fmt.Errorf("%s", multiSourceMsg)
	}
	return nil
}
