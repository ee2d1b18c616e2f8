package ioctx

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/samber/lo"
)

// FakeIO implements IOContext from fixtures supplied at construction, performing no
// genuine effect. Fixture maps are cloned at construction and never mutated afterwards;
// WrittenFiles and Logs only grow. Read and write fixtures are disjoint address spaces:
// a WriteFile never makes a later ReadFile of the same path succeed, so a test must
// seed both independently.
type FakeIO struct {
	fileContents   map[string][]byte
	httpResponses  map[string]HTTPResponse
	commandResults map[string]CommandResult

	// WrittenFiles records the latest payload written to each path.
	WrittenFiles map[string][]byte

	// Logs records every Log call in order.
	Logs []LogEntry
}

// FakeOption seeds a FakeIO with fixtures.
type FakeOption func(*FakeIO)

// WithFileContents seeds the read fixtures, keyed by exact path.
func WithFileContents(contents map[string][]byte) FakeOption {
	return func(f *FakeIO) { f.fileContents = lo.Assign(f.fileContents, contents) }
}

// WithHTTPResponses seeds the HTTP fixtures. Keys are either a bare URL or the
// composite form produced by PostKey.
func WithHTTPResponses(responses map[string]HTTPResponse) FakeOption {
	return func(f *FakeIO) { f.httpResponses = lo.Assign(f.httpResponses, responses) }
}

// WithCommandResults seeds the process fixtures, keyed by argv joined with single spaces.
func WithCommandResults(results map[string]CommandResult) FakeOption {
	return func(f *FakeIO) { f.commandResults = lo.Assign(f.commandResults, results) }
}

// NewFakeIO constructs a fake backend answering exclusively from the given fixtures.
func NewFakeIO(opts ...FakeOption) *FakeIO {
	f := &FakeIO{
		fileContents:   map[string][]byte{},
		httpResponses:  map[string]HTTPResponse{},
		commandResults: map[string]CommandResult{},
		WrittenFiles:   map[string][]byte{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PostKey builds the composite fixture key consulted first by HTTPPost: the URL and the
// Go-syntax representation of the payload joined by a colon. Fixtures must be seeded
// with exactly this form to match a specific payload.
func PostKey(url string, data any) string {
	return fmt.Sprintf("%s:%#v", url, data)
}

// ReadFile answers from the read fixtures by exact path.
func (f *FakeIO) ReadFile(path string) ([]byte, error) {
	content, ok := f.fileContents[path]
	if !ok {
		return nil, fmt.Errorf("no fixture content for %s%s: %w",
			path, suggestKey(path, lo.Keys(f.fileContents)), fs.ErrNotExist)
	}
	return content, nil
}

// WriteFile stores content under path in WrittenFiles, replacing any prior payload for
// that path. It never fails.
func (f *FakeIO) WriteFile(path string, content []byte) error {
	f.WrittenFiles[path] = content
	return nil
}

// HTTPGet answers from the HTTP fixtures by exact URL. The options bag is ignored.
func (f *FakeIO) HTTPGet(url string, _ RequestOptions) (HTTPResponse, error) {
	resp, ok := f.httpResponses[url]
	if !ok {
		return HTTPResponse{}, fmt.Errorf("%w for GET %s%s",
			ErrLookupMiss, url, suggestKey(url, lo.Keys(f.httpResponses)))
	}
	return resp, nil
}

// HTTPPost answers from the HTTP fixtures with a two-tier lookup: the composite PostKey
// form first, then the bare URL. The ordering and key construction are contractual;
// tests may rely on the exact composite form.
func (f *FakeIO) HTTPPost(url string, data any, _ RequestOptions) (HTTPResponse, error) {
	if resp, ok := f.httpResponses[PostKey(url, data)]; ok {
		return resp, nil
	}
	if resp, ok := f.httpResponses[url]; ok {
		return resp, nil
	}
	return HTTPResponse{}, fmt.Errorf("%w for POST %s with %#v%s",
		ErrLookupMiss, url, data, suggestKey(url, lo.Keys(f.httpResponses)))
}

// ExecuteCommand answers from the process fixtures. The key is argv joined with single
// spaces and no quoting normalization, so ["ls","-la"] matches only "ls -la".
func (f *FakeIO) ExecuteCommand(cmd []string) (CommandResult, error) {
	joined := strings.Join(cmd, " ")
	result, ok := f.commandResults[joined]
	if !ok {
		return CommandResult{}, fmt.Errorf("%w for command %q%s",
			ErrLookupMiss, joined, suggestKey(joined, lo.Keys(f.commandResults)))
	}
	return result, nil
}

// Log appends the entry to Logs. It never fails.
func (f *FakeIO) Log(level, message string) error {
	f.Logs = append(f.Logs, LogEntry{Level: level, Message: message})
	return nil
}
