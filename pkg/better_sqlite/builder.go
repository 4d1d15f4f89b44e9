package better_sqlite

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/wemcdonald/better_sqlite/pkg/sqlerr"
)

// Builder collects the options used to open a database. It is an immutable
// value: every With method returns a modified copy.
type Builder struct {
	path          string
	readonly      bool
	fileMustExist bool
	timeout       time.Duration
	verbose       VerboseHook
	nativeBinding *string
}

// NewBuilder starts a Builder for the database at path with default options
func NewBuilder(path string) Builder {
	return Builder{
		path:    path,
		timeout: DefaultTimeout,
	}
}

// WithReadonly opens the database without write access
func (b Builder) WithReadonly(readonly bool) Builder {
	b.readonly = readonly
	return b
}

// WithFileMustExist fails the open instead of creating a missing file
func (b Builder) WithFileMustExist(mustExist bool) Builder {
	b.fileMustExist = mustExist
	return b
}

// WithTimeout sets how long to wait on a locked database. The engine works
// in whole milliseconds.
func (b Builder) WithTimeout(timeout time.Duration) Builder {
	b.timeout = timeout
	return b
}

// WithVerboseHook installs a hook receiving every executed SQL text
func (b Builder) WithVerboseHook(hook VerboseHook) Builder {
	b.verbose = hook
	return b
}

// WithNativeBinding opens through the named database/sql driver instead of
// DefaultBinding. The driver must wrap the same engine.
func (b Builder) WithNativeBinding(driverName string) Builder {
	b.nativeBinding = &driverName
	return b
}

// Path returns the database path
func (b Builder) Path() string { return b.path }

// Readonly reports whether the database opens read-only
func (b Builder) Readonly() bool { return b.readonly }

// FileMustExist reports whether opening requires an existing file
func (b Builder) FileMustExist() bool { return b.fileMustExist }

// Timeout returns the busy timeout
func (b Builder) Timeout() time.Duration { return b.timeout }

// VerboseHook returns the verbose hook, if one was set
func (b Builder) VerboseHook() (VerboseHook, bool) {
	return b.verbose, b.verbose != nil
}

// NativeBinding returns the native binding, if one was set
func (b Builder) NativeBinding() (string, bool) {
	if b.nativeBinding == nil {
		return "", false
	}
	return *b.nativeBinding, true
}

// Build opens the database described by b
func (b Builder) Build() (*DB, error) {
	return Build(b)
}

// options is the set handed to the engine. The verbose hook and native
// binding are present only when the Builder set them.
type options struct {
	readonly      bool
	fileMustExist bool
	timeout       time.Duration
	verbose       VerboseHook
	nativeBinding *string
}

func optionsFrom(b Builder) options {
	opts := options{
		readonly:      b.readonly,
		fileMustExist: b.fileMustExist,
		timeout:       b.timeout,
	}
	if hook, ok := b.VerboseHook(); ok {
		opts.verbose = hook
	}
	if name, ok := b.NativeBinding(); ok {
		opts.nativeBinding = &name
	}
	return opts
}

const maxTimeoutMs = 0x7fffffff

func (o options) validate(path string) error {
	if o.timeout < 0 {
		return sqlerr.RangeError("Expected the \"timeout\" option to be a positive integer")
	}
	if o.timeout.Milliseconds() > maxTimeoutMs {
		return sqlerr.RangeError(fmt.Sprintf("Option \"timeout\" cannot be greater than %d", maxTimeoutMs))
	}
	if o.readonly && isMemory(path) {
		return sqlerr.TypeError("In-memory/temporary databases cannot be readonly")
	}
	return nil
}

func isMemory(path string) bool {
	return path == MemoryPath || path == ""
}

// dataSourceName renders the engine's URI filename for path and o
func dataSourceName(path string, o options) string {
	q := url.Values{}
	q.Set("_busy_timeout", strconv.FormatInt(o.timeout.Milliseconds(), 10))
	if isMemory(path) {
		return "file::memory:?" + q.Encode()
	}

	switch {
	case o.readonly:
		q.Set("mode", "ro")
	case o.fileMustExist:
		q.Set("mode", "rw")
	}
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?" + q.Encode()
}
