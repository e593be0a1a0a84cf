package ast

// Comparison
const (
	OpEqual              = "="
	OpNotEqual           = "!="
	OpLessThan           = "<"
	OpLessThanOrEqual    = "<="
	OpGreaterThan        = ">"
	OpGreaterThanOrEqual = ">="
)

// Logical
const (
	OpAnd = "AND"
	OpOr  = "OR"
	OpNot = "NOT"
)

// Pattern matching
const (
	OpLike    = "LIKE"
	OpNotLike = "NOT LIKE"
	OpILike   = "ILIKE"
)

// Set membership
const (
	OpIn    = "IN"
	OpNotIn = "NOT IN"
)

// Null checks
const (
	OpIsNull    = "IS NULL"
	OpIsNotNull = "IS NOT NULL"
)

// Range
const (
	OpBetween    = "BETWEEN"
	OpNotBetween = "NOT BETWEEN"
)
