// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 8

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// HTTP Transport - these keys tune the shared client injected into real IO contexts.
const (
	HTTPTimeout   = "http.timeout"
	HTTPUserAgent = "http.user_agent"
)

// Fetch Behavior - these keys govern the fetch command's file output.
const (
	FetchOverwrite = "fetch.overwrite"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
