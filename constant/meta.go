// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Ioctx is the canonical application identifier used for filesystem paths and CLI branding.
	Ioctx = "ioctx"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent header attached to outgoing requests
	// unless the caller overrides it through request options.
	UserAgent = "ioctx/" + Version + " (+https://github.com/ioctx-cli/ioctx)"
)

// Build metadata, overridden at release time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
