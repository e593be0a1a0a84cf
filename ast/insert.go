package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type InsertStmt struct {
	With        *WithClause
	Table       *Table
	Assignments *AssignmentList
	Returning   *ReturningClause
}

func (i *InsertStmt) Type() NodeType         { return NodeInsert }
func (i *InsertStmt) Accept(v Visitor) error { return v.VisitInsert(i) }
func (i *InsertStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("insert:"))
	if !i.With.Empty() {
		h.Write(utils.U64ToBytes(i.With.Fingerprint()))
	}
	if i.Table != nil {
		h.Write(utils.U64ToBytes(i.Table.Fingerprint()))
	}
	if !i.Assignments.Empty() {
		h.Write(utils.U64ToBytes(i.Assignments.Fingerprint()))
	}
	if i.Returning != nil {
		h.Write(utils.U64ToBytes(i.Returning.Fingerprint()))
	}
	return h.Sum64()
}
