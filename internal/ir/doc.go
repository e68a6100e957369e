// Package ir holds the launch manifest representation shared by the
// compiler, the store and the CLI.
//
// LaunchSpec is the decoded, format independent manifest. Launch is the
// compiled record: at most one typed dims.Dims per level plus a content
// hash that identifies it.
//
// Key design constraints:
//   - ir imports only the core packages (level, dims)
//   - a level slot is a struct field, so a level cannot appear twice
//   - identity is a domain separated SHA-256 over canonical JSON
//   - no inter-level consistency checks; those belong to the dispatcher
package ir
