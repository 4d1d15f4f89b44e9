package better_sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wemcdonald/better_sqlite/pkg/sqlerr"
	"github.com/wemcdonald/better_sqlite/pkg/value"
)

// Statement is a compiled statement bound to the DB that prepared it.
// A Statement must not be used by more than one goroutine at a time.
type Statement struct {
	db       *DB
	stmt     *sqlx.Stmt
	source   string
	columns  []string
	params   int
	reader   bool
	readonly bool
	raw      bool
	closed   bool
}

// Database returns the DB that prepared s
func (s *Statement) Database() *DB { return s.db }

// Source returns the SQL text s was prepared from
func (s *Statement) Source() string { return s.source }

// IsReader reports whether s produces rows
func (s *Statement) IsReader() bool { return s.reader }

// IsReadonly reports whether s leaves the database unchanged
func (s *Statement) IsReadonly() bool { return s.readonly }

// IsRaw reports whether rows come back positional
func (s *Statement) IsRaw() bool { return s.raw }

// Columns returns the names of the result columns
func (s *Statement) Columns() []string { return s.columns }

// Raw switches between positional and named rows. Only statements that
// produce rows accept it.
func (s *Statement) Raw(enabled bool) (*Statement, error) {
	if err := s.usable(); err != nil {
		return nil, err
	}
	if !s.reader {
		return nil, translate(sqlerr.Misuse("The Raw method is only for statements that return data"))
	}
	s.raw = enabled
	return s, nil
}

// Run executes s and reports the changes it made
func (s *Statement) Run(params ...value.Value) (ExecInfo, error) {
	if err := s.bindable(params); err != nil {
		return ExecInfo{}, err
	}

	s.db.trace(s.source)
	res, err := s.stmt.ExecContext(background, value.EncodeAll(params)...)
	if err != nil {
		return ExecInfo{}, translate(err)
	}

	var info ExecInfo
	if info.RowsAffected, err = res.RowsAffected(); err != nil {
		return ExecInfo{}, translate(err)
	}
	if info.LastInsertID, err = res.LastInsertId(); err != nil {
		return ExecInfo{}, translate(err)
	}
	return info, nil
}

// All executes s and returns every row in engine order
func (s *Statement) All(params ...value.Value) ([]Row, error) {
	return s.query(params, 0)
}

// Get executes s and returns its first row. The bool is false when the
// result set is empty.
func (s *Statement) Get(params ...value.Value) (Row, bool, error) {
	rows, err := s.query(params, 1)
	if err != nil {
		return Row{}, false, err
	}
	if len(rows) == 0 {
		return Row{}, false, nil
	}
	return rows[0], true, nil
}

// Close releases the compiled statement. Statements are also released
// when their DB closes.
func (s *Statement) Close() error {
	if err := s.usable(); err != nil {
		return err
	}
	s.closed = true
	return translate(s.stmt.Close())
}

func (s *Statement) query(params []value.Value, limit int) ([]Row, error) {
	if err := s.bindable(params); err != nil {
		return nil, err
	}
	if !s.reader {
		return nil, translate(sqlerr.Misuse("This statement does not return data. Use Run instead"))
	}

	s.db.trace(s.source)
	rows, err := s.stmt.QueryxContext(background, value.EncodeAll(params)...)
	if err != nil {
		return nil, translate(err)
	}
	out, err := collect(rows, s.raw, limit)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (s *Statement) usable() error {
	if err := s.db.checkOpen(); err != nil {
		return err
	}
	if s.closed {
		return translate(sqlerr.Misuse("The statement is closed"))
	}
	return nil
}

func (s *Statement) bindable(params []value.Value) error {
	if err := s.usable(); err != nil {
		return err
	}
	switch {
	case len(params) < s.params:
		return translate(sqlerr.RangeError(fmt.Sprintf("Too few parameter values were provided: want %d, got %d", s.params, len(params))))
	case len(params) > s.params:
		return translate(sqlerr.RangeError(fmt.Sprintf("Too many parameter values were provided: want %d, got %d", s.params, len(params))))
	}
	return nil
}
