package ast

// RawExprs wraps opaque SQL fragments as nodes, preserving order.
func RawExprs(texts ...string) []Node {
	nodes := make([]Node, len(texts))
	for i, text := range texts {
		nodes[i] = NewRaw(text)
	}
	return nodes
}

// InCondition synthesizes "column IN (v1, v2, ...)".
func InCondition(column string, values []any) Node {
	return NewBinaryExpr(NewColumn(column), OpIn, NewArray(values))
}

// NullCondition synthesizes "column IS NULL" or "column IS NOT NULL".
func NullCondition(column string, isNull bool) Node {
	op := OpIsNull
	if !isNull {
		op = OpIsNotNull
	}
	return NewUnaryExpr(NewColumn(column), op, false)
}

// AndAll folds conditions left-to-right with AND. Used for multi-condition
// join predicates.
func AndAll(conds []Node) Node {
	if len(conds) == 0 {
		return nil
	}
	cond := conds[0]
	for _, next := range conds[1:] {
		cond = NewBinaryExpr(cond, OpAnd, next)
	}
	return cond
}
