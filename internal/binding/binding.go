// Package binding resolves the database/sql driver that backs a connection and
// reads engine state that database/sql does not surface.
package binding

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
	"slices"

	"github.com/mattn/go-sqlite3"
	"github.com/wemcdonald/better_sqlite/pkg/sqlerr"
)

// Default is the driver registered by github.com/mattn/go-sqlite3
const Default = "sqlite3"

// AutoCommitter is implemented by driver connections that expose the engine's
// autocommit flag, as *sqlite3.SQLiteConn does
type AutoCommitter interface {
	AutoCommit() bool
}

// ReadonlyReporter is implemented by compiled statements that expose
// sqlite3_stmt_readonly, as *sqlite3.SQLiteStmt does
type ReadonlyReporter interface {
	Readonly() bool
}

// Shape describes a compiled statement without running it
type Shape struct {
	// Params is the number of parameters the statement declares
	Params int
	// Columns lists the result columns; empty for statements that produce no rows
	Columns []string
	// Readonly is the engine's verdict on whether the statement writes
	Readonly bool
	// Tail is the text after the first statement that the engine left
	// uncompiled
	Tail string
}

// Resolve returns the driver name to open with. A nil name selects Default.
func Resolve(name *string) (string, error) {
	if name == nil {
		return Default, nil
	}
	if !slices.Contains(sql.Drivers(), *name) {
		return "", sqlerr.TypeError(fmt.Sprintf("native binding %q is not a registered database/sql driver", *name))
	}
	return *name, nil
}

// Check verifies that a driver connection can serve as an engine session
func Check(driverConn any) error {
	if _, ok := driverConn.(AutoCommitter); !ok {
		return sqlerr.TypeError(fmt.Sprintf("native binding connection %T does not expose the autocommit state", driverConn))
	}
	if _, ok := driverConn.(driver.Conn); !ok {
		return sqlerr.TypeError(fmt.Sprintf("native binding connection %T is not a driver.Conn", driverConn))
	}
	return nil
}

// InTransaction reports whether the engine has an open transaction
func InTransaction(driverConn any) (bool, error) {
	ac, ok := driverConn.(AutoCommitter)
	if !ok {
		return false, sqlerr.TypeError(fmt.Sprintf("native binding connection %T does not expose the autocommit state", driverConn))
	}
	return !ac.AutoCommit(), nil
}

// Probe compiles query on the driver connection and reports its parameter
// count, result columns, readonly flag and uncompiled tail. The statement is
// bound to nothing and never stepped, so probing has no effect on the
// database.
func Probe(ctx context.Context, driverConn any, query string) (Shape, error) {
	var (
		st  driver.Stmt
		err error
	)
	switch c := driverConn.(type) {
	case driver.ConnPrepareContext:
		st, err = c.PrepareContext(ctx, query)
	case driver.Conn:
		st, err = c.Prepare(query)
	default:
		return Shape{}, sqlerr.TypeError(fmt.Sprintf("native binding connection %T cannot prepare statements", driverConn))
	}
	if err != nil {
		return Shape{}, err
	}
	defer st.Close()

	ro, ok := st.(ReadonlyReporter)
	if !ok {
		return Shape{}, sqlerr.TypeError(fmt.Sprintf("native binding statement %T does not expose the readonly flag", st))
	}
	tail, err := tailOf(st)
	if err != nil {
		return Shape{}, err
	}

	shape := Shape{Params: st.NumInput(), Readonly: ro.Readonly(), Tail: tail}
	q, ok := st.(driver.StmtQueryContext)
	if !ok {
		return shape, nil
	}
	rows, err := q.QueryContext(ctx, nil)
	if err != nil {
		return shape, err
	}
	shape.Columns = rows.Columns()
	return shape, rows.Close()
}

// tailOf returns the text the engine did not compile. mattn keeps it in an
// unexported field of SQLiteStmt.
func tailOf(st driver.Stmt) (string, error) {
	if t, ok := st.(interface{ Tail() string }); ok {
		return t.Tail(), nil
	}
	if _, ok := st.(*sqlite3.SQLiteStmt); ok {
		if f := reflect.ValueOf(st).Elem().FieldByName("t"); f.Kind() == reflect.String {
			return f.String(), nil
		}
	}
	return "", sqlerr.TypeError(fmt.Sprintf("native binding statement %T does not expose the uncompiled tail", st))
}
