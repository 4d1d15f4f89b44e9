// Package better_sqlite provides a typed, fallible boundary over an embedded SQLite engine.
package better_sqlite

import (
	"github.com/wemcdonald/better_sqlite/pkg/better_sqlite"
	"github.com/wemcdonald/better_sqlite/pkg/sqlerr"
	"github.com/wemcdonald/better_sqlite/pkg/value"
)

// MemoryPath opens a private in-memory database
const MemoryPath = better_sqlite.MemoryPath

// Open opens the database at path with default options
func Open(path string) (*better_sqlite.DB, error) {
	return better_sqlite.Open(path)
}

// NewBuilder starts a Builder for the database at path
func NewBuilder(path string) better_sqlite.Builder {
	return better_sqlite.NewBuilder(path)
}

// Re-export types for convenience
type (
	DB          = better_sqlite.DB
	Statement   = better_sqlite.Statement
	Builder     = better_sqlite.Builder
	Row         = better_sqlite.Row
	ExecInfo    = better_sqlite.ExecInfo
	Value       = value.Value
	EngineError = sqlerr.EngineError
	HostError   = sqlerr.HostError
)
