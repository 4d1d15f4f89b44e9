package better_sqlite

import (
	"time"

	"github.com/wemcdonald/better_sqlite/internal/binding"
	"github.com/wemcdonald/better_sqlite/pkg/value"
)

const (
	// DefaultTimeout is how long the engine waits on a locked database
	// before reporting SQLITE_BUSY
	DefaultTimeout = 5 * time.Second

	// DefaultBinding is the database/sql driver used when no native binding is set
	DefaultBinding = binding.Default

	// MemoryPath opens a private in-memory database
	MemoryPath = ":memory:"
)

// VerboseHook receives the SQL text of every statement the connection executes
type VerboseHook func(sql string)

// ExecInfo reports the effect of Statement.Run
type ExecInfo struct {
	RowsAffected int64
	LastInsertID int64
}

// Row is one result row. Named rows map column names to values; raw rows
// hold values in declared column order.
type Row struct {
	columns []string
	fields  map[string]value.Value
	values  []value.Value
	raw     bool
}

// IsRaw reports whether the row was produced in raw mode
func (r Row) IsRaw() bool {
	return r.raw
}

// Columns returns the column names of the result set
func (r Row) Columns() []string {
	return r.columns
}

// Fields returns the named record, or nil for a raw row
func (r Row) Fields() map[string]value.Value {
	return r.fields
}

// Values returns the positional values, or nil for a named row
func (r Row) Values() []value.Value {
	return r.values
}

// Get returns the value of the named column. When several columns share a
// name the last one wins.
func (r Row) Get(column string) (value.Value, bool) {
	if !r.raw {
		v, ok := r.fields[column]
		return v, ok
	}
	for i := len(r.columns) - 1; i >= 0; i-- {
		if r.columns[i] == column && i < len(r.values) {
			return r.values[i], true
		}
	}
	return value.Value{}, false
}

// Len returns the number of values in the row
func (r Row) Len() int {
	if r.raw {
		return len(r.values)
	}
	return len(r.fields)
}
