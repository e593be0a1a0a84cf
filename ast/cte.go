package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

// CTE binds a name to a fully assembled inner statement. The inner
// statement is rendered inline inside the WITH preamble.
type CTE struct {
	Name string
	Stmt Node
}

// WithClause holds the ordered CTE list for one statement. Names are
// unique; redefining a name replaces the statement in place, keeping the
// original position.
type WithClause struct {
	CTEs []*CTE
}

func (w *WithClause) Put(name string, stmt Node) {
	for _, cte := range w.CTEs {
		if cte.Name == name {
			cte.Stmt = stmt
			return
		}
	}
	w.CTEs = append(w.CTEs, &CTE{Name: name, Stmt: stmt})
}

func (w *WithClause) Empty() bool {
	return w == nil || len(w.CTEs) == 0
}

func (w *WithClause) Type() NodeType         { return NodeWith }
func (w *WithClause) Accept(v Visitor) error { return v.VisitWith(w) }
func (w *WithClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("with:"))
	for _, cte := range w.CTEs {
		h.Write([]byte(cte.Name))
		h.Write(utils.U64ToBytes(cte.Stmt.Fingerprint()))
	}
	return h.Sum64()
}
