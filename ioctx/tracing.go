package ioctx

// TraceEntry is one recorded operation observed through a TracingIO. Args holds the
// call's arguments; Result holds the returned value, or nil for void operations.
type TraceEntry struct {
	Operation string
	Args      map[string]any
	Result    any
}

// TracingIO wraps any IOContext by composition and records every call that completes
// successfully, in call order. Failed calls propagate their error unchanged and leave
// no record: the trace reflects completed calls, not attempts. The wrapped value is
// held by reference, not owned; a caller may keep using it directly, and another
// TracingIO may wrap this one.
type TracingIO struct {
	base  IOContext
	trace []TraceEntry
}

// NewTracingIO wraps base in a tracing decorator.
func NewTracingIO(base IOContext) *TracingIO {
	return &TracingIO{base: base}
}

// Trace returns the ordered record of completed calls so far. Entries are never
// mutated or reordered; call again to observe operations performed since.
func (t *TracingIO) Trace() []TraceEntry {
	return t.trace
}

func (t *TracingIO) record(op string, args map[string]any, result any) {
	t.trace = append(t.trace, TraceEntry{Operation: op, Args: args, Result: result})
}

// ReadFile delegates to the wrapped context and records the completed read.
func (t *TracingIO) ReadFile(path string) ([]byte, error) {
	content, err := t.base.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t.record("read_file", map[string]any{"path": path}, content)
	return content, nil
}

// WriteFile delegates and records the write. The record carries content_size rather
// than the payload itself, keeping the trace bounded regardless of what was written.
func (t *TracingIO) WriteFile(path string, content []byte) error {
	if err := t.base.WriteFile(path, content); err != nil {
		return err
	}
	t.record("write_file", map[string]any{"path": path, "content_size": len(content)}, nil)
	return nil
}

// HTTPGet delegates and records the completed request with its response.
func (t *TracingIO) HTTPGet(url string, opts RequestOptions) (HTTPResponse, error) {
	resp, err := t.base.HTTPGet(url, opts)
	if err != nil {
		return HTTPResponse{}, err
	}
	t.record("http_get", map[string]any{"url": url, "options": opts}, resp)
	return resp, nil
}

// HTTPPost delegates and records the completed request with its payload and response.
func (t *TracingIO) HTTPPost(url string, data any, opts RequestOptions) (HTTPResponse, error) {
	resp, err := t.base.HTTPPost(url, data, opts)
	if err != nil {
		return HTTPResponse{}, err
	}
	t.record("http_post", map[string]any{"url": url, "data": data, "options": opts}, resp)
	return resp, nil
}

// ExecuteCommand delegates and records the completed run with its result.
func (t *TracingIO) ExecuteCommand(cmd []string) (CommandResult, error) {
	result, err := t.base.ExecuteCommand(cmd)
	if err != nil {
		return CommandResult{}, err
	}
	t.record("execute_command", map[string]any{"cmd": cmd}, result)
	return result, nil
}

// Log delegates and records the completed emission.
func (t *TracingIO) Log(level, message string) error {
	if err := t.base.Log(level, message); err != nil {
		return err
	}
	t.record("log", map[string]any{"level": level, "message": message}, nil)
	return nil
}
