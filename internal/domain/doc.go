// Package domain contains the core model for WordlistCraft.
//
// The domain does not depend on YAML parsing, the terminal, or the filesystem.
// Infra/adapters map into/from these types.
package domain
