package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// Naming utilities for deriving database identifiers from Go type and
// field names, so builders can be bound to a target without spelling the
// table name by hand.

// pluralizeClient is a singleton for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// NamingStrategy converts Go names to database identifiers.
type NamingStrategy interface {
	// TableName converts a Go struct name to a table name.
	TableName(structName string) string
	// ColumnName converts a Go field name to a column name.
	ColumnName(fieldName string) string
}

type snakeCaseStrategy struct {
	pluralTables bool
}

// DefaultNaming returns the snake_case strategy with plural table names
// (UserAccount -> user_accounts, FirstName -> first_name).
func DefaultNaming() NamingStrategy {
	return &snakeCaseStrategy{pluralTables: true}
}

// SingularNaming returns the snake_case strategy with singular table
// names (UserAccount -> user_account).
func SingularNaming() NamingStrategy {
	return &snakeCaseStrategy{pluralTables: false}
}

func (s *snakeCaseStrategy) TableName(structName string) string {
	name := toSnakeCase(structName)
	if s.pluralTables {
		return pluralizeClient.Plural(name)
	}
	return name
}

func (s *snakeCaseStrategy) ColumnName(fieldName string) string {
	return toSnakeCase(fieldName)
}

// toSnakeCase converts a Go identifier to snake_case, keeping acronym
// runs together (OrderID -> order_id, HTTPServer -> http_server).
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// Already snake_case.
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 8)

	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// aB -> a_b, a1B -> a1_b; inside an acronym run, split
			// before the last capital when a lowercase follows: ABc -> a_bc.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteByte('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
