// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"
	"strings"
)

// Compare orders two semantic version strings by major, minor, patch precedence.
// It returns 1 when a is newer than b, -1 when older, and 0 when they denote the
// same release. A leading "v" is tolerated on either input.
func Compare(a, b string) (int, error) {
	parse := func(s string) ([3]int, error) {
		var parts [3]int
		_, err := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &parts[0], &parts[1], &parts[2])
		return parts, err
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}
