package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type DeleteStmt struct {
	With      *WithClause
	Table     *Table
	Where     *WhereClause
	Returning *ReturningClause
}

func (d *DeleteStmt) Type() NodeType         { return NodeDelete }
func (d *DeleteStmt) Accept(v Visitor) error { return v.VisitDelete(d) }
func (d *DeleteStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("delete:"))
	if !d.With.Empty() {
		h.Write(utils.U64ToBytes(d.With.Fingerprint()))
	}
	if d.Table != nil {
		h.Write(utils.U64ToBytes(d.Table.Fingerprint()))
	}
	if !d.Where.Empty() {
		h.Write(utils.U64ToBytes(d.Where.Fingerprint()))
	}
	if d.Returning != nil {
		h.Write(utils.U64ToBytes(d.Returning.Fingerprint()))
	}
	return h.Sum64()
}
