package ast

type Visitor interface {
	VisitSelect(*SelectStmt) error
	VisitInsert(*InsertStmt) error
	VisitUpdate(*UpdateStmt) error
	VisitDelete(*DeleteStmt) error

	VisitColumn(*Column) error
	VisitTable(*Table) error
	VisitRaw(*Raw) error
	VisitValue(*Value) error
	VisitArray(*Array) error
	VisitBinaryExpr(*BinaryExpr) error
	VisitUnaryExpr(*UnaryExpr) error
	VisitGroupedExpr(*GroupedExpr) error

	VisitWhereClause(*WhereClause) error
	VisitJoinClause(*JoinClause) error
	VisitGroupBy(*GroupByClause) error
	VisitOrderBy(*OrderByClause) error
	VisitLimitClause(*LimitClause) error
	VisitReturning(*ReturningClause) error
	VisitWith(*WithClause) error

	Build(root Node) (string, []any, error)
}
