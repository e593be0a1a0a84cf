package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type GroupByClause struct {
	Exprs []Node
}

func (g *GroupByClause) Append(exprs ...Node) {
	g.Exprs = append(g.Exprs, exprs...)
}

func (g *GroupByClause) Type() NodeType         { return NodeGroupBy }
func (g *GroupByClause) Accept(v Visitor) error { return v.VisitGroupBy(g) }
func (g *GroupByClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("groupby:"))
	for _, expr := range g.Exprs {
		h.Write(utils.U64ToBytes(expr.Fingerprint()))
	}
	return h.Sum64()
}
