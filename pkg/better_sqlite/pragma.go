package better_sqlite

import (
	"strings"
	"unicode"

	"github.com/wemcdonald/better_sqlite/pkg/value"
)

// pragmaSQL prefixes source with PRAGMA unless it already starts with it
func pragmaSQL(source string) string {
	s := strings.TrimSpace(source)
	const kw = "pragma"
	if len(s) >= len(kw) && strings.EqualFold(s[:len(kw)], kw) &&
		(len(s) == len(kw) || unicode.IsSpace(rune(s[len(kw)]))) {
		return s
	}
	return "PRAGMA " + s
}

func (db *DB) pragma(source string, raw bool, limit int) ([]Row, error) {
	if err := db.checkOpen(); err != nil {
		return nil, err
	}

	sql := pragmaSQL(source)
	db.trace(sql)
	rows, err := db.sess.conn.QueryxContext(background, sql)
	if err != nil {
		return nil, translate(err)
	}
	out, err := collect(rows, raw, limit)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Pragma runs a pragma and discards its result, e.g. Pragma("journal_mode = WAL")
func (db *DB) Pragma(source string) error {
	if err := db.checkOpen(); err != nil {
		return err
	}

	sql := pragmaSQL(source)
	db.trace(sql)
	_, err := db.sess.conn.ExecContext(background, sql)
	return translate(err)
}

// PragmaValue runs a pragma and returns the first column of its first row,
// or NULL when it returns no rows
func (db *DB) PragmaValue(source string) (value.Value, error) {
	rows, err := db.pragma(source, true, 1)
	if err != nil {
		return value.Value{}, err
	}
	if len(rows) == 0 || len(rows[0].Values()) == 0 {
		return value.Null(), nil
	}
	return rows[0].Values()[0], nil
}

// PragmaAll runs a pragma and returns all of its rows as named records
func (db *DB) PragmaAll(source string) ([]Row, error) {
	return db.pragma(source, false, 0)
}
