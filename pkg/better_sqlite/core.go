package better_sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wemcdonald/better_sqlite/internal/binding"
	"github.com/wemcdonald/better_sqlite/pkg/sqlerr"
	"github.com/wemcdonald/better_sqlite/pkg/value"
)

// The engine is synchronous and the boundary offers no cancellation, so
// every native call runs under a background context.
var background = context.Background()

// translate is applied at every native call site
func translate(err error) error {
	return sqlerr.Translate(err)
}

// session is the single engine connection behind a DB. The pool is capped
// at one connection and that connection stays checked out for the life of
// the session, so in-memory databases and transaction state persist.
type session struct {
	db   *sqlx.DB
	conn *sqlx.Conn
}

func openSession(dsn string, opts options) (*session, error) {
	driverName, err := binding.Resolve(opts.nativeBinding)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	conn, err := db.Connx(background)
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := conn.Raw(binding.Check); err != nil {
		conn.Close()
		db.Close()
		return nil, err
	}
	return &session{db: db, conn: conn}, nil
}

func (s *session) close() error {
	return errors.Join(s.conn.Close(), s.db.Close())
}

func (s *session) inTransaction() (bool, error) {
	var inTx bool
	err := s.conn.Raw(func(driverConn any) error {
		var err error
		inTx, err = binding.InTransaction(driverConn)
		return err
	})
	return inTx, err
}

func (s *session) probe(query string) (binding.Shape, error) {
	var shape binding.Shape
	err := s.conn.Raw(func(driverConn any) error {
		var err error
		shape, err = binding.Probe(background, driverConn, query)
		return err
	})
	return shape, err
}

// collect materializes rows. limit <= 0 reads every row.
func collect(rows *sqlx.Rows, raw bool, limit int) (out []Row, err error) {
	defer func() {
		if cerr := rows.Close(); err == nil {
			err = cerr
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out = []Row{}
	for rows.Next() {
		row := Row{columns: columns, raw: raw}
		if raw {
			vals, err := rows.SliceScan()
			if err != nil {
				return nil, err
			}
			if row.values, err = value.DecodeAll(vals); err != nil {
				return nil, err
			}
		} else {
			m := make(map[string]any, len(columns))
			if err := rows.MapScan(m); err != nil {
				return nil, err
			}
			row.fields = make(map[string]value.Value, len(m))
			for k, v := range m {
				if row.fields[k], err = value.Decode(v); err != nil {
					return nil, fmt.Errorf("column %q: %w", k, err)
				}
			}
		}
		out = append(out, row)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
