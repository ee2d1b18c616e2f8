package ioctx

import (
	"errors"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Sentinel errors distinguishing the declared failure modes of the contract.
// Platform-level NotFound and PermissionDenied are not redeclared here; backends
// surface those as errors satisfying fs.ErrNotExist and fs.ErrPermission.
var (
	// ErrConfiguration reports a missing or unusable capability on a real backend,
	// such as an absent HTTP transport or an unrecognized log level.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument reports input the operation cannot act on, such as a
	// malformed URL or an empty argv.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLookupMiss reports an absent fixture on a fake backend. The message always
	// names the unmatched key so a missing test fixture is immediately diagnosable.
	ErrLookupMiss = errors.New("no fixture")
)

// suggestKey returns a "did you mean" hint naming the fixture key closest to the
// requested one, or an empty string when nothing is close enough to be helpful.
func suggestKey(requested string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	closest := lo.MinBy(candidates, func(a string, b string) bool {
		return levenshtein.Distance(requested, a) < levenshtein.Distance(requested, b)
	})

	// A hint further away than half the key is noise, not help.
	if levenshtein.Distance(requested, closest) > len(requested)/2 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", closest)
}
