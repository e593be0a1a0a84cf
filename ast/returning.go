package ast

import (
	"hash/fnv"
)

// ReturningClause names the columns returned by a mutating statement.
// An empty column list renders as RETURNING *.
type ReturningClause struct {
	Columns []string
}

func (r *ReturningClause) Type() NodeType         { return NodeReturning }
func (r *ReturningClause) Accept(v Visitor) error { return v.VisitReturning(r) }
func (r *ReturningClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("returning:"))
	for _, col := range r.Columns {
		h.Write([]byte(col + ","))
	}
	return h.Sum64()
}
