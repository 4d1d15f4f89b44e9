package sqlparser

import (
	"strings"

	"github.com/xwb1989/sqlparser"
)

// SQLParser scans SQL text into a SQLStatement
type SQLParser struct{}

// NewSQLParser creates a new SQL parser instance
func NewSQLParser() *SQLParser {
	return &SQLParser{}
}

type token struct {
	typ  int
	text string
}

// Parse scans query and describes its first statement.
// The scan is lexical only, so SQLite syntax the tokenizer does not know
// ends the scan early instead of failing it; the engine remains the
// authority on validity and on where a statement ends.
// Returns ErrEmptyQuery if the text holds only blanks, comments or semicolons.
func (p *SQLParser) Parse(query string) (*SQLStatement, error) {
	first, count := p.scan(query)
	if count == 0 {
		return nil, ErrEmptyQuery
	}

	stmt := &SQLStatement{Count: count}
	if len(first) > 0 {
		stmt.Keyword = first[0].text
	}
	stmt.Type = p.statementType(query, stmt.Keyword)
	return stmt, nil
}

// scan returns the tokens of the first statement and the number of
// non-empty statements
func (p *SQLParser) scan(query string) ([]token, int) {
	tkn := sqlparser.NewStringTokenizer(query)
	var first []token
	count := 0
	inStatement := false

	for {
		typ, val := tkn.Scan()
		switch typ {
		case 0:
			if inStatement {
				count++
			}
			return first, count
		case sqlparser.LEX_ERROR:
			// unknown to the MySQL lexer; assume the rest belongs to the
			// current statement
			if inStatement || strings.TrimSpace(query) != "" {
				count++
			}
			return first, count
		case sqlparser.COMMENT:
			continue
		case ';':
			if inStatement {
				count++
				inStatement = false
			}
			continue
		}

		inStatement = true
		if count == 0 {
			first = append(first, token{typ: typ, text: strings.ToLower(string(val))})
		}
	}
}

// IsBlank reports whether query holds nothing the engine would compile.
// Only SQLite comment forms count as comments.
func (p *SQLParser) IsBlank(query string) bool {
	tkn := sqlparser.NewStringTokenizer(query)
	for {
		typ, val := tkn.Scan()
		switch typ {
		case 0:
			return true
		case ';':
		case sqlparser.COMMENT:
			if strings.HasPrefix(string(val), "#") {
				return false
			}
		default:
			return false
		}
	}
}

func (p *SQLParser) statementType(query, keyword string) StatementType {
	switch sqlparser.Preview(query) {
	case sqlparser.StmtSelect:
		return StatementSelect
	case sqlparser.StmtInsert, sqlparser.StmtReplace:
		return StatementInsert
	case sqlparser.StmtUpdate:
		return StatementUpdate
	case sqlparser.StmtDelete:
		return StatementDelete
	case sqlparser.StmtBegin, sqlparser.StmtCommit, sqlparser.StmtRollback:
		return StatementTransaction
	}

	switch keyword {
	case "create":
		return StatementCreate
	case "alter", "rename":
		return StatementAlter
	case "drop":
		return StatementDrop
	case "pragma":
		return StatementPragma
	case "explain":
		return StatementExplain
	case "with", "values":
		return StatementSelect
	case "savepoint", "release", "end":
		return StatementTransaction
	case "":
		return StatementUnknown
	}
	return StatementOther
}
