// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Literal is the canonical application identifier used for filesystem paths and CLI branding.
	Literal = "literal"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent sent with every request to the Literal API.
	UserAgent = Literal + "-cli/" + Version

	// Endpoint is the default Literal.club GraphQL endpoint.
	Endpoint = "https://literal.club/graphql/"

	// TokenFile is the name of the session token file placed in the user's home directory.
	TokenFile = ".literal_token"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
