package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type UpdateStmt struct {
	With        *WithClause
	Table       *Table
	Assignments *AssignmentList
	Where       *WhereClause
	Returning   *ReturningClause
}

func (u *UpdateStmt) Type() NodeType         { return NodeUpdate }
func (u *UpdateStmt) Accept(v Visitor) error { return v.VisitUpdate(u) }
func (u *UpdateStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("update:"))
	if !u.With.Empty() {
		h.Write(utils.U64ToBytes(u.With.Fingerprint()))
	}
	if u.Table != nil {
		h.Write(utils.U64ToBytes(u.Table.Fingerprint()))
	}
	if !u.Assignments.Empty() {
		h.Write(utils.U64ToBytes(u.Assignments.Fingerprint()))
	}
	if !u.Where.Empty() {
		h.Write(utils.U64ToBytes(u.Where.Fingerprint()))
	}
	if u.Returning != nil {
		h.Write(utils.U64ToBytes(u.Returning.Fingerprint()))
	}
	return h.Sum64()
}
