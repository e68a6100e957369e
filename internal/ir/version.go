package ir

// Version constants for persisted launch records.
const (
	// IRVersion is the launch record schema version.
	IRVersion = "1"

	// ToolVersion is the launchdims tool version.
	ToolVersion = "0.1.0"
)
