package sqlparser

// StatementType represents the type of SQL statement
type StatementType int

const (
	StatementUnknown StatementType = iota
	StatementSelect
	StatementInsert
	StatementUpdate
	StatementDelete
	StatementCreate
	StatementAlter
	StatementDrop
	StatementPragma
	StatementTransaction
	StatementExplain
	StatementOther
)

// String implements the Stringer interface for StatementType
func (s StatementType) String() string {
	switch s {
	case StatementSelect:
		return "SELECT"
	case StatementInsert:
		return "INSERT"
	case StatementUpdate:
		return "UPDATE"
	case StatementDelete:
		return "DELETE"
	case StatementCreate:
		return "CREATE"
	case StatementAlter:
		return "ALTER"
	case StatementDrop:
		return "DROP"
	case StatementPragma:
		return "PRAGMA"
	case StatementTransaction:
		return "TRANSACTION"
	case StatementExplain:
		return "EXPLAIN"
	case StatementOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// SQLStatement describes the first statement of a SQL text
type SQLStatement struct {
	Type StatementType
	// Keyword is the lowercased leading keyword
	Keyword string
	// Count is the number of non-empty statements in the text
	Count int
}
