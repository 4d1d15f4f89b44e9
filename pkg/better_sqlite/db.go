package better_sqlite

import (
	"errors"
	"sync"

	"github.com/wemcdonald/better_sqlite/pkg/sqlerr"
	"github.com/wemcdonald/better_sqlite/pkg/sqlparser"
)

const errNotOpen = "The database connection is not open"

// DB is an open engine session
type DB struct {
	name     string
	readonly bool
	memory   bool
	opts     options
	sess     *session

	mu     sync.Mutex
	closed bool
}

// Open opens the database at path with default options
func Open(path string) (*DB, error) {
	return Build(NewBuilder(path))
}

// Build opens the database described by b
func Build(b Builder) (*DB, error) {
	opts := optionsFrom(b)
	if err := opts.validate(b.path); err != nil {
		return nil, translate(err)
	}

	sess, err := openSession(dataSourceName(b.path, opts), opts)
	if err != nil {
		return nil, translate(err)
	}

	return &DB{
		name:     b.path,
		readonly: opts.readonly,
		memory:   isMemory(b.path),
		opts:     opts,
		sess:     sess,
	}, nil
}

// Close releases the engine session. Closing an already closed DB is an
// SQLITE_MISUSE error.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return translate(sqlerr.Misuse(errNotOpen))
	}
	db.closed = true
	return translate(db.sess.close())
}

// IsOpen reports whether Close has not been called yet
func (db *DB) IsOpen() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return !db.closed
}

// InTransaction reports whether the engine has an open transaction.
// It is false once the DB is closed.
func (db *DB) InTransaction() bool {
	if !db.IsOpen() {
		return false
	}
	inTx, err := db.sess.inTransaction()
	return err == nil && inTx
}

// Name returns the path the database was opened with
func (db *DB) Name() string { return db.name }

// IsMemory reports whether the database lives in memory
func (db *DB) IsMemory() bool { return db.memory }

// IsReadonly reports whether the database was opened read-only
func (db *DB) IsReadonly() bool { return db.readonly }

func (db *DB) checkOpen() error {
	if !db.IsOpen() {
		return translate(sqlerr.Misuse(errNotOpen))
	}
	return nil
}

func (db *DB) trace(sql string) {
	if db.opts.verbose != nil {
		db.opts.verbose(sql)
	}
}

// Exec runs one or more statements without parameters and discards any rows
func (db *DB) Exec(sql string) error {
	if err := db.checkOpen(); err != nil {
		return err
	}
	db.trace(sql)
	_, err := db.sess.conn.ExecContext(background, sql)
	return translate(err)
}

// Prepare compiles a single statement. Text the engine leaves uncompiled
// after the first statement must be blank.
func (db *DB) Prepare(sql string) (*Statement, error) {
	if err := db.checkOpen(); err != nil {
		return nil, err
	}
	if sqlparser.IsBlank(sql) {
		return nil, translate(sqlerr.RangeError("The supplied SQL string contains no statements"))
	}

	shape, err := db.sess.probe(sql)
	if err != nil {
		return nil, translate(err)
	}
	if !sqlparser.IsBlank(shape.Tail) {
		return nil, translate(sqlerr.RangeError("The supplied SQL string contains more than one statement"))
	}
	stmt, err := db.sess.conn.PreparexContext(background, sql)
	if err != nil {
		return nil, translate(err)
	}

	return &Statement{
		db:       db,
		stmt:     stmt,
		source:   sql,
		columns:  shape.Columns,
		params:   shape.Params,
		reader:   len(shape.Columns) > 0,
		readonly: shape.Readonly,
	}, nil
}

// Transaction runs fn inside BEGIN and COMMIT. When fn fails, or COMMIT
// does, the transaction is rolled back and the error returned; fn's own
// errors are returned as is.
func (db *DB) Transaction(fn func(*DB) error) error {
	if err := db.Exec("BEGIN"); err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			db.rollback()
			panic(p)
		}
	}()

	if err := fn(db); err != nil {
		return db.abort(err)
	}
	if err := db.Exec("COMMIT"); err != nil {
		return db.abort(err)
	}
	return nil
}

func (db *DB) abort(cause error) error {
	if err := db.rollback(); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// rollback undoes the open transaction, if the engine has not already
func (db *DB) rollback() error {
	if !db.InTransaction() {
		return nil
	}
	return db.Exec("ROLLBACK")
}
