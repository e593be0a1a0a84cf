package query

import (
	"strings"

	"github.com/sqlforge/sqlforge/dialect"
	"github.com/sqlforge/sqlforge/visitor"
)

// FromRaw wraps an already written statement in a builder whose Build
// returns it verbatim. The text is checked for shape only: one statement
// of a recognized kind. Nothing inside it is parsed or escaped.
func FromRaw(raw string) (*Builder, error) {
	text, err := validateRaw(raw)
	if err != nil {
		return nil, err
	}
	b := &Builder{
		visitor: visitor.NewSQLVisitor(dialect.NewPostgresDialect(), defaultCache),
	}
	b.reset()
	b.inline = true
	b.raw = text
	return b, nil
}

func validateRaw(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimSuffix(text, ";")
	if text == "" {
		return "", &QueryError{Op: "from_raw", Reason: "empty query"}
	}
	if strings.Contains(text, ";") {
		return "", &QueryError{Op: "from_raw", Reason: "multiple queries in one statement are not supported"}
	}

	keyword := strings.ToUpper(text)
	if i := strings.IndexAny(keyword, " \t\r\n"); i > 0 {
		keyword = keyword[:i]
	}
	switch keyword {
	case "SELECT", "INSERT", "UPDATE", "DELETE", "WITH":
		return text, nil
	default:
		return "", &QueryError{Op: "from_raw", Reason: "invalid query type " + keyword}
	}
}
