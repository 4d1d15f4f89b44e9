package sqlerr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"reflect"

	"github.com/mattn/go-sqlite3"
	"github.com/wemcdonald/better_sqlite/pkg/value"
)

// sentinels name well-known Go errors that carry no type of their own
var sentinels = []struct {
	err  error
	name string
}{
	{value.ErrTypeMismatch, "TypeMismatch"},
	{sql.ErrConnDone, "ConnDone"},
	{sql.ErrTxDone, "TxDone"},
	{sql.ErrNoRows, "NoRows"},
	{driver.ErrBadConn, "BadConn"},
	{driver.ErrSkip, "Skip"},
	{context.Canceled, "Canceled"},
	{context.DeadlineExceeded, "DeadlineExceeded"},
	{fs.ErrNotExist, "NotExist"},
	{fs.ErrPermission, "Permission"},
}

// Translate classifies err into an *EngineError or a *HostError.
// A nil err yields nil and an err that already is an Error is returned
// unchanged. Translate never panics.
func Translate(err error) (out error) {
	if err == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			out = &HostError{Name: Unknown, Message: fmt.Sprint(r)}
		}
	}()

	var known Error
	if errors.As(err, &known) {
		return known
	}
	return classify(Describe(err))
}

// Describe lowers any error into the raw Failure the translator classifies
func Describe(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	var se sqlite3.Error
	if errors.As(err, &se) {
		return &Failure{Name: "SqliteError", Code: string(describeCode(se)), Message: se.Error()}
	}
	var sep *sqlite3.Error
	if errors.As(err, &sep) && sep != nil {
		return &Failure{Name: "SqliteError", Code: string(describeCode(*sep)), Message: sep.Error()}
	}

	return &Failure{Name: hostName(err), Message: err.Error()}
}

// describeCode keeps unrecognized numeric codes visible as engine codes so
// they classify as EngineError{UNKNOWN}
func describeCode(se sqlite3.Error) Code {
	if c := codeOf(se); c != CodeUnknown {
		return c
	}
	return Code(fmt.Sprintf("SQLITE_%d", int(se.ExtendedCode)))
}

func classify(f *Failure) Error {
	msg := orUnknown(f.Message)
	if f.Code != "" {
		code := Code(f.Code)
		if !code.Known() {
			code = CodeUnknown
		}
		return &EngineError{Code: code, Message: msg}
	}
	return &HostError{Name: orUnknown(f.Name), Message: msg}
}

func hostName(err error) string {
	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.name
		}
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); token.IsExported(name) {
		return name
	}
	return Unknown
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// As reports whether err is a translated Error and returns it
func As(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err is an EngineError whose code, or primary code,
// equals code
func IsCode(err error, code Code) bool {
	var e *EngineError
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code || e.Code.Primary() == code
}
