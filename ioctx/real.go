package ioctx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ioctx-cli/ioctx/constant"
	"github.com/ioctx-cli/ioctx/filesystem"
	"github.com/ioctx-cli/ioctx/key"
	"github.com/ioctx-cli/ioctx/log"
	"github.com/ioctx-cli/ioctx/network"
	"github.com/ioctx-cli/ioctx/util"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// RealIO implements IOContext by delegating each operation to a genuine capability:
// the virtualized filesystem, the shared HTTP transport, os/exec child processes,
// and the process-wide logrus sink. Each capability can be overridden at construction.
type RealIO struct {
	fs     afero.Afero
	client *http.Client
	sink   *logrus.Logger
}

// RealOption customizes the capabilities behind a RealIO.
type RealOption func(*RealIO)

// WithFs replaces the filesystem capability.
func WithFs(fs afero.Fs) RealOption {
	return func(r *RealIO) { r.fs = afero.Afero{Fs: fs} }
}

// WithHTTPClient replaces the HTTP transport capability. Passing nil removes the
// transport entirely; subsequent HTTPGet/HTTPPost calls fail with ErrConfiguration.
func WithHTTPClient(client *http.Client) RealOption {
	return func(r *RealIO) { r.client = client }
}

// WithLogSink replaces the logging sink capability.
func WithLogSink(sink *logrus.Logger) RealOption {
	return func(r *RealIO) { r.sink = sink }
}

// NewRealIO constructs a backend wired to the application's default capabilities:
// the active filesystem backend, the shared network client, and the process-wide
// log sink.
func NewRealIO(opts ...RealOption) *RealIO {
	r := &RealIO{
		fs:     filesystem.API(),
		client: network.Client(),
		sink:   log.Sink(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFile reads the file in binary mode, propagating the platform error unchanged.
func (r *RealIO) ReadFile(path string) ([]byte, error) {
	return r.fs.ReadFile(path)
}

// WriteFile writes content through a temporary file in the destination directory and
// renames it into place, so a failure never leaves a partially written destination.
func (r *RealIO) WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := r.fs.TempFile(dir, filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = r.fs.Remove(name)
		return err
	}
	if err := r.fs.Rename(name, path); err != nil {
		_ = r.fs.Remove(name)
		return err
	}
	return nil
}

// HTTPGet performs a GET request through the injected transport.
func (r *RealIO) HTTPGet(rawURL string, opts RequestOptions) (HTTPResponse, error) {
	return r.request(http.MethodGet, rawURL, nil, "", opts)
}

// HTTPPost performs a POST request, encoding the opaque payload by its dynamic type:
// byte slices, strings, and readers pass through untouched, url.Values form-encode,
// and anything else marshals to JSON.
func (r *RealIO) HTTPPost(rawURL string, data any, opts RequestOptions) (HTTPResponse, error) {
	body, contentType, err := encodePayload(data)
	if err != nil {
		return HTTPResponse{}, err
	}
	return r.request(http.MethodPost, rawURL, body, contentType, opts)
}

func (r *RealIO) request(method, rawURL string, body io.Reader, contentType string, opts RequestOptions) (HTTPResponse, error) {
	if r.client == nil {
		return HTTPResponse{}, fmt.Errorf("%w: no HTTP transport configured", ErrConfiguration)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return HTTPResponse{}, fmt.Errorf("%w: malformed URL %q", ErrInvalidArgument, rawURL)
	}

	req, err := http.NewRequest(method, rawURL, body)
	if err != nil {
		return HTTPResponse{}, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	req.Header.Set("User-Agent", userAgent())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	client := r.client
	if opts.Timeout > 0 {
		scoped := *client
		scoped.Timeout = opts.Timeout
		client = &scoped
	}

	// Transport failures propagate unchanged; only the missing-transport case above
	// is manufactured here.
	resp, err := client.Do(req)
	if err != nil {
		return HTTPResponse{}, err
	}
	defer util.Ignore(resp.Body.Close)

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return HTTPResponse{}, err
	}

	headers := make(map[string]string, len(resp.Header))
	for name := range resp.Header {
		headers[name] = resp.Header.Get(name)
	}

	return HTTPResponse{
		StatusCode: resp.StatusCode,
		Text:       string(text),
		Headers:    headers,
	}, nil
}

// ExecuteCommand spawns argv as a child process and captures its output as text.
// The exit code is data: a non-zero exit never becomes an error. Errors locating or
// starting the executable propagate unchanged.
func (r *RealIO) ExecuteCommand(cmd []string) (CommandResult, error) {
	if len(cmd) == 0 {
		return CommandResult{}, fmt.Errorf("%w: empty command", ErrInvalidArgument)
	}

	child := exec.Command(cmd[0], cmd[1:]...)

	var stdout, stderr bytes.Buffer
	child.Stdout = &stdout
	child.Stderr = &stderr

	err := child.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return CommandResult{
			ReturnCode: exitErr.ExitCode(),
			Stdout:     stdout.String(),
			Stderr:     stderr.String(),
		}, nil
	}
	if err != nil {
		return CommandResult{}, err
	}

	return CommandResult{
		ReturnCode: 0,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
	}, nil
}

// Log resolves level against the sink's recognized severity labels and emits message.
// An unrecognized level is a configuration error raised at call time.
func (r *RealIO) Log(level, message string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: unrecognized log level %q", ErrConfiguration, level)
	}
	r.sink.Log(parsed, message)
	return nil
}

func userAgent() string {
	if ua := viper.GetString(key.HTTPUserAgent); ua != "" {
		return ua
	}
	return constant.UserAgent
}

func encodePayload(data any) (io.Reader, string, error) {
	switch v := data.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "", nil
	case io.Reader:
		return v, "", nil
	case url.Values:
		return strings.NewReader(v.Encode()), "application/x-www-form-urlencoded", nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, "", fmt.Errorf("%w: unencodable payload: %s", ErrInvalidArgument, err)
		}
		return bytes.NewReader(encoded), "application/json", nil
	}
}
