// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Literal API - these keys control how the client reaches the remote GraphQL service.
const (
	APIEndpoint = "api.endpoint"
	APITimeout  = "api.timeout"
)

// Session Persistence - these keys select where the bearer token is cached.
const (
	AuthStore = "auth.store"
)

// Reading List - these keys shape the "currently reading" query.
const (
	ReadingLimit = "reading.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
	LogsDebug = "logs.debug"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored = "cli.colored"
)
