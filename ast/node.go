package ast

type NodeType int

const (
	NodeSelect NodeType = iota
	NodeInsert
	NodeUpdate
	NodeDelete
	NodeColumn
	NodeTable
	NodeRaw
	NodeValue
	NodeArray
	NodeBinaryExpr
	NodeUnaryExpr
	NodeGroupedExpr
	NodeWhere
	NodeJoin
	NodeGroupBy
	NodeOrderBy
	NodeLimit
	NodeReturning
	NodeWith
	NodeCTE
)

type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}
