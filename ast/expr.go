package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type BinaryExpr struct {
	Left     Node
	Operator string
	Right    Node
}

func NewBinaryExpr(left Node, operator string, right Node) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: operator, Right: right}
}

func (b *BinaryExpr) Type() NodeType         { return NodeBinaryExpr }
func (b *BinaryExpr) Accept(v Visitor) error { return v.VisitBinaryExpr(b) }
func (b *BinaryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("bin:" + b.Operator))
	if b.Left != nil {
		h.Write(utils.U64ToBytes(b.Left.Fingerprint()))
	}
	if b.Right != nil {
		h.Write(utils.U64ToBytes(b.Right.Fingerprint()))
	}
	return h.Sum64()
}

type UnaryExpr struct {
	Operator string
	Operand  Node
	IsPrefix bool
}

func NewUnaryExpr(operand Node, operator string, isPrefix bool) *UnaryExpr {
	return &UnaryExpr{Operand: operand, Operator: operator, IsPrefix: isPrefix}
}

func (u *UnaryExpr) Type() NodeType         { return NodeUnaryExpr }
func (u *UnaryExpr) Accept(v Visitor) error { return v.VisitUnaryExpr(u) }
func (u *UnaryExpr) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("unary:" + u.Operator))
	if u.Operand != nil {
		h.Write(utils.U64ToBytes(u.Operand.Fingerprint()))
	}
	return h.Sum64()
}

type GroupedExpr struct {
	Expr Node
}

func (g *GroupedExpr) Type() NodeType         { return NodeGroupedExpr }
func (g *GroupedExpr) Accept(v Visitor) error { return v.VisitGroupedExpr(g) }
func (g *GroupedExpr) Fingerprint() uint64 {
	if g.Expr == nil {
		return 0
	}
	return utils.Mix64(utils.FingerprintString("grouped"), g.Expr.Fingerprint())
}
