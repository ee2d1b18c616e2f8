// Package ioctx defines a narrow contract over side-effecting operations - file IO, HTTP,
// process execution, and logging - together with three interchangeable realizations.
//
// RealIO performs genuine operations through injected capabilities, FakeIO answers from
// fixtures supplied at construction, and TracingIO wraps any other IOContext and records
// every completed call. Application code holds a value typed as IOContext and never learns
// which realization it received, which is what makes code depending on these effects
// exercisable deterministically.
package ioctx

import "time"

// IOContext is the contract all backends satisfy. Every operation blocks until the
// underlying effect completes; there is no scheduling or background work behind it.
// Instances are not safe for concurrent use - the contract assumes a single logical caller.
type IOContext interface {
	// ReadFile returns the contents of the file at path.
	// A missing path satisfies errors.Is(err, fs.ErrNotExist); an inaccessible one
	// satisfies errors.Is(err, fs.ErrPermission).
	ReadFile(path string) ([]byte, error)

	// WriteFile stores content at path in binary mode. On failure nothing is
	// partially applied.
	WriteFile(path string, content []byte) error

	// HTTPGet performs a GET request. The options bag is forwarded verbatim to the
	// transport. Fails with ErrInvalidArgument for a malformed URL; transport
	// failures propagate unchanged.
	HTTPGet(url string, opts RequestOptions) (HTTPResponse, error)

	// HTTPPost performs a POST request with an opaque payload. Same failure modes
	// as HTTPGet.
	HTTPPost(url string, data any, opts RequestOptions) (HTTPResponse, error)

	// ExecuteCommand runs argv as a child process. A non-zero exit is communicated
	// through CommandResult.ReturnCode, never as an error; an error means the
	// process could not be located or started.
	ExecuteCommand(cmd []string) (CommandResult, error)

	// Log emits message at the given severity level. The level is a free-form label
	// resolved by the logging sink; a real sink rejects unrecognized levels with
	// ErrConfiguration.
	Log(level, message string) error
}

// HTTPResponse is the reduced view of an HTTP exchange shared by all backends.
// Treated as immutable once constructed.
type HTTPResponse struct {
	StatusCode int
	Text       string
	Headers    map[string]string
}

// CommandResult captures a finished child process. Treated as immutable once constructed.
type CommandResult struct {
	ReturnCode int
	Stdout     string
	Stderr     string
}

// RequestOptions is the opaque named-parameter bag forwarded to the HTTP transport.
// The fake backend ignores it; the tracing decorator records it verbatim.
type RequestOptions struct {
	// Headers are set on the outgoing request, overriding defaults.
	Headers map[string]string
	// Timeout, when positive, bounds this single request. Zero defers to the
	// transport's own timeout.
	Timeout time.Duration
}

// LogEntry is one recorded Log call on a FakeIO.
type LogEntry struct {
	Level   string
	Message string
}

// Conformance assertions for the three realizations.
var (
	_ IOContext = (*RealIO)(nil)
	_ IOContext = (*FakeIO)(nil)
	_ IOContext = (*TracingIO)(nil)
)
