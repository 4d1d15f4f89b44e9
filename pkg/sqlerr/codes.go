package sqlerr

import (
	"strings"

	"github.com/mattn/go-sqlite3"
)

// Code is the name of a SQLite result code, primary or extended
type Code string

// Primary result codes
const (
	CodeError      Code = "SQLITE_ERROR"
	CodeInternal   Code = "SQLITE_INTERNAL"
	CodePerm       Code = "SQLITE_PERM"
	CodeAbort      Code = "SQLITE_ABORT"
	CodeBusy       Code = "SQLITE_BUSY"
	CodeLocked     Code = "SQLITE_LOCKED"
	CodeNomem      Code = "SQLITE_NOMEM"
	CodeReadonly   Code = "SQLITE_READONLY"
	CodeInterrupt  Code = "SQLITE_INTERRUPT"
	CodeIoErr      Code = "SQLITE_IOERR"
	CodeCorrupt    Code = "SQLITE_CORRUPT"
	CodeNotFound   Code = "SQLITE_NOTFOUND"
	CodeFull       Code = "SQLITE_FULL"
	CodeCantOpen   Code = "SQLITE_CANTOPEN"
	CodeProtocol   Code = "SQLITE_PROTOCOL"
	CodeEmpty      Code = "SQLITE_EMPTY"
	CodeSchema     Code = "SQLITE_SCHEMA"
	CodeTooBig     Code = "SQLITE_TOOBIG"
	CodeConstraint Code = "SQLITE_CONSTRAINT"
	CodeMismatch   Code = "SQLITE_MISMATCH"
	CodeMisuse     Code = "SQLITE_MISUSE"
	CodeNoLFS      Code = "SQLITE_NOLFS"
	CodeAuth       Code = "SQLITE_AUTH"
	CodeFormat     Code = "SQLITE_FORMAT"
	CodeRange      Code = "SQLITE_RANGE"
	CodeNotADB     Code = "SQLITE_NOTADB"
	CodeNotice     Code = "SQLITE_NOTICE"
	CodeWarning    Code = "SQLITE_WARNING"

	// CodeUnknown is reported for engine failures whose code is not in the table
	CodeUnknown Code = Unknown
)

// Primary collapses an extended code such as SQLITE_CONSTRAINT_UNIQUE
// to its primary code
func (c Code) Primary() Code {
	rest, ok := strings.CutPrefix(string(c), "SQLITE_")
	if !ok {
		return c
	}
	if i := strings.IndexByte(rest, '_'); i >= 0 {
		return Code("SQLITE_" + rest[:i])
	}
	return c
}

// Known reports whether c is in the result code table
func (c Code) Known() bool {
	_, ok := knownCodes[c]
	return ok
}

type codeFamily struct {
	primary  Code
	extended []string // index i holds the suffix for extended code primary|(i+1)<<8
}

var families = map[sqlite3.ErrNo]codeFamily{
	sqlite3.ErrError:      {CodeError, []string{"MISSING_COLLSEQ", "RETRY", "SNAPSHOT"}},
	sqlite3.ErrInternal:   {CodeInternal, nil},
	sqlite3.ErrPerm:       {CodePerm, nil},
	sqlite3.ErrAbort:      {CodeAbort, []string{"", "ROLLBACK"}},
	sqlite3.ErrBusy:       {CodeBusy, []string{"RECOVERY", "SNAPSHOT", "TIMEOUT"}},
	sqlite3.ErrLocked:     {CodeLocked, []string{"SHAREDCACHE", "VTAB"}},
	sqlite3.ErrNomem:      {CodeNomem, nil},
	sqlite3.ErrReadonly:   {CodeReadonly, []string{"RECOVERY", "CANTLOCK", "ROLLBACK", "DBMOVED", "CANTINIT", "DIRECTORY"}},
	sqlite3.ErrInterrupt:  {CodeInterrupt, nil},
	sqlite3.ErrIoErr:      {CodeIoErr, ioErrExtended},
	sqlite3.ErrCorrupt:    {CodeCorrupt, []string{"VTAB", "SEQUENCE", "INDEX"}},
	sqlite3.ErrNotFound:   {CodeNotFound, nil},
	sqlite3.ErrFull:       {CodeFull, nil},
	sqlite3.ErrCantOpen:   {CodeCantOpen, []string{"NOTEMPDIR", "ISDIR", "FULLPATH", "CONVPATH", "DIRTYWAL", "SYMLINK"}},
	sqlite3.ErrProtocol:   {CodeProtocol, nil},
	sqlite3.ErrEmpty:      {CodeEmpty, nil},
	sqlite3.ErrSchema:     {CodeSchema, nil},
	sqlite3.ErrTooBig:     {CodeTooBig, nil},
	sqlite3.ErrConstraint: {CodeConstraint, constraintExtended},
	sqlite3.ErrMismatch:   {CodeMismatch, nil},
	sqlite3.ErrMisuse:     {CodeMisuse, nil},
	sqlite3.ErrNoLFS:      {CodeNoLFS, nil},
	sqlite3.ErrAuth:       {CodeAuth, []string{"USER"}},
	sqlite3.ErrFormat:     {CodeFormat, nil},
	sqlite3.ErrRange:      {CodeRange, nil},
	sqlite3.ErrNotADB:     {CodeNotADB, nil},
	sqlite3.ErrNotice:     {CodeNotice, []string{"RECOVER_WAL", "RECOVER_ROLLBACK"}},
	sqlite3.ErrWarning:    {CodeWarning, []string{"AUTOINDEX"}},
}

var constraintExtended = []string{
	"CHECK", "COMMITHOOK", "FOREIGNKEY", "FUNCTION", "NOTNULL", "PRIMARYKEY",
	"TRIGGER", "UNIQUE", "VTAB", "ROWID", "PINNED", "DATATYPE",
}

var ioErrExtended = []string{
	"READ", "SHORT_READ", "WRITE", "FSYNC", "DIR_FSYNC", "TRUNCATE", "FSTAT",
	"UNLOCK", "RDLOCK", "DELETE", "BLOCKED", "NOMEM", "ACCESS",
	"CHECKRESERVEDLOCK", "LOCK", "CLOSE", "DIR_CLOSE", "SHMOPEN", "SHMSIZE",
	"SHMLOCK", "SHMMAP", "SEEK", "DELETE_NOENT", "MMAP", "GETTEMPPATH",
	"CONVPATH", "VNODE", "AUTH", "BEGIN_ATOMIC", "COMMIT_ATOMIC",
	"ROLLBACK_ATOMIC", "DATA", "CORRUPTFS",
}

var (
	knownCodes    = map[Code]struct{}{}
	extendedCodes = map[sqlite3.ErrNoExtended]Code{}
)

func init() {
	for errno, fam := range families {
		knownCodes[fam.primary] = struct{}{}
		for i, suffix := range fam.extended {
			if suffix == "" {
				continue
			}
			c := Code(string(fam.primary) + "_" + suffix)
			knownCodes[c] = struct{}{}
			extendedCodes[sqlite3.ErrNoExtended(int(errno)|(i+1)<<8)] = c
		}
	}
}

// codeOf names the most specific code carried by an engine error
func codeOf(e sqlite3.Error) Code {
	if c, ok := extendedCodes[e.ExtendedCode]; ok {
		return c
	}
	if fam, ok := families[e.Code]; ok {
		return fam.primary
	}
	return CodeUnknown
}
