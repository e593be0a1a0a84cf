package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type OrderItem struct {
	Expr Node
	Desc bool
}

type OrderByClause struct {
	Items []OrderItem
}

func (o *OrderByClause) Append(desc bool, exprs ...Node) {
	for _, expr := range exprs {
		o.Items = append(o.Items, OrderItem{Expr: expr, Desc: desc})
	}
}

func (o *OrderByClause) Type() NodeType         { return NodeOrderBy }
func (o *OrderByClause) Accept(v Visitor) error { return v.VisitOrderBy(o) }
func (o *OrderByClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("order:"))
	for _, item := range o.Items {
		h.Write(utils.U64ToBytes(item.Expr.Fingerprint()))
		if item.Desc {
			h.Write([]byte("desc"))
		}
	}
	return h.Sum64()
}
