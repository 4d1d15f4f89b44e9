// Package sqlparser classifies SQL text before it is handed to the engine:
// whether it holds anything, how many statements it appears to hold and
// what kind the first one is.
package sqlparser

import (
	"errors"
)

// ErrEmptyQuery is returned when the text holds no statement
var ErrEmptyQuery = errors.New("empty query")

var defaultParser = NewSQLParser()

// Parse classifies query with the default parser
func Parse(query string) (*SQLStatement, error) {
	return defaultParser.Parse(query)
}

// IsBlank reports whether query holds nothing but whitespace, comments and
// semicolons
func IsBlank(query string) bool {
	return defaultParser.IsBlank(query)
}
