package ast

import "github.com/sqlforge/sqlforge/utils"

type Table struct {
	Schema string
	Name   string
	Alias  string
}

func NewTable(schema, name, alias string) *Table {
	return &Table{Schema: schema, Name: name, Alias: alias}
}

func (t *Table) Type() NodeType         { return NodeTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }
func (t *Table) Fingerprint() uint64 {
	s := t.Schema + "." + t.Name + "." + t.Alias
	return utils.FingerprintString(s)
}
