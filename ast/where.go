package ast

import "github.com/sqlforge/sqlforge/utils"

// WhereClause accumulates filter conditions into a left-to-right binary
// tree. The first condition seeds the tree; each subsequent And/Or wraps
// the existing tree as the left operand.
type WhereClause struct {
	Cond Node
}

func NewWhereClause(cond Node) *WhereClause {
	return &WhereClause{Cond: cond}
}

func (w *WhereClause) And(cond Node) {
	if w.Cond == nil {
		w.Cond = cond
		return
	}
	w.Cond = NewBinaryExpr(w.Cond, OpAnd, cond)
}

func (w *WhereClause) Or(cond Node) {
	if w.Cond == nil {
		w.Cond = cond
		return
	}
	w.Cond = NewBinaryExpr(w.Cond, OpOr, cond)
}

func (w *WhereClause) Empty() bool {
	return w == nil || w.Cond == nil
}

func (w *WhereClause) Type() NodeType         { return NodeWhere }
func (w *WhereClause) Accept(v Visitor) error { return v.VisitWhereClause(w) }
func (w *WhereClause) Fingerprint() uint64 {
	if w.Cond == nil {
		return 0
	}
	return utils.Mix64(utils.FingerprintString("where"), w.Cond.Fingerprint())
}
