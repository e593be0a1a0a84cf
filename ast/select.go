package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type SelectStmt struct {
	With    *WithClause
	Columns []Node
	From    *Table
	Joins   []*JoinClause
	Where   *WhereClause
	GroupBy *GroupByClause
	Having  Node
	OrderBy *OrderByClause
	Limit   *LimitClause
}

func NewSelectStmt(from *Table) *SelectStmt {
	return &SelectStmt{
		From:    from,
		Where:   &WhereClause{},
		GroupBy: &GroupByClause{},
		OrderBy: &OrderByClause{},
	}
}

func (s *SelectStmt) Type() NodeType         { return NodeSelect }
func (s *SelectStmt) Accept(v Visitor) error { return v.VisitSelect(s) }
func (s *SelectStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("select:"))
	if !s.With.Empty() {
		h.Write(utils.U64ToBytes(s.With.Fingerprint()))
	}
	for _, col := range s.Columns {
		h.Write(utils.U64ToBytes(col.Fingerprint()))
	}
	if s.From != nil {
		h.Write(utils.U64ToBytes(s.From.Fingerprint()))
	}
	for _, j := range s.Joins {
		h.Write(utils.U64ToBytes(j.Fingerprint()))
	}
	if !s.Where.Empty() {
		h.Write(utils.U64ToBytes(s.Where.Fingerprint()))
	}
	if s.GroupBy != nil {
		h.Write(utils.U64ToBytes(s.GroupBy.Fingerprint()))
	}
	if s.Having != nil {
		h.Write(utils.U64ToBytes(s.Having.Fingerprint()))
	}
	if s.OrderBy != nil {
		h.Write(utils.U64ToBytes(s.OrderBy.Fingerprint()))
	}
	if s.Limit != nil {
		h.Write(utils.U64ToBytes(s.Limit.Fingerprint()))
	}
	return h.Sum64()
}
