package ast

import "github.com/sqlforge/sqlforge/utils"

type Column struct {
	Table string
	Name  string
	Alias string
}

func NewColumn(name string) *Column {
	return &Column{Name: name}
}

func (c *Column) Type() NodeType         { return NodeColumn }
func (c *Column) Accept(v Visitor) error { return v.VisitColumn(c) }
func (c *Column) Fingerprint() uint64 {
	s := c.Table + "." + c.Name
	return utils.FingerprintString(s)
}
