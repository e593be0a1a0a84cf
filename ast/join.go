package ast

import (
	"hash/fnv"
	"strconv"

	"github.com/sqlforge/sqlforge/utils"
)

type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
)

func (t JoinType) Keyword() string {
	switch t {
	case JoinInner:
		return "INNER JOIN"
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	default:
		return "INNER JOIN"
	}
}

type JoinClause struct {
	Kind  JoinType
	Table *Table
	Cond  Node
}

func NewJoinClause(kind JoinType, table *Table, cond Node) *JoinClause {
	return &JoinClause{Kind: kind, Table: table, Cond: cond}
}

func (j *JoinClause) Type() NodeType         { return NodeJoin }
func (j *JoinClause) Accept(v Visitor) error { return v.VisitJoinClause(j) }
func (j *JoinClause) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("join:" + strconv.Itoa(int(j.Kind))))
	fp := h.Sum64()
	if j.Table != nil {
		fp = utils.Mix64(fp, j.Table.Fingerprint())
	}
	if j.Cond != nil {
		fp = utils.Mix64(fp, j.Cond.Fingerprint())
	}
	return fp
}
