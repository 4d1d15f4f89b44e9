package better_sqlite

import (
	"github.com/wemcdonald/better_sqlite/pkg/value"
)

// Database defines the operations of an open connection
type Database interface {
	// Lifecycle
	Close() error

	// Introspection
	IsOpen() bool
	InTransaction() bool
	Name() string
	IsMemory() bool
	IsReadonly() bool

	// Statements
	Exec(sql string) error
	Prepare(sql string) (*Statement, error)
	Transaction(fn func(*DB) error) error

	// Pragmas
	Pragma(source string) error
	PragmaValue(source string) (value.Value, error)
	PragmaAll(source string) ([]Row, error)
}

// PreparedStatement defines the operations of a compiled statement
type PreparedStatement interface {
	Run(params ...value.Value) (ExecInfo, error)
	All(params ...value.Value) ([]Row, error)
	Get(params ...value.Value) (Row, bool, error)
	Raw(enabled bool) (*Statement, error)
	Close() error

	Database() *DB
	Source() string
	IsReader() bool
	IsReadonly() bool
	IsRaw() bool
	Columns() []string
}

var (
	_ Database          = (*DB)(nil)
	_ PreparedStatement = (*Statement)(nil)
)
