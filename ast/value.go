package ast

import (
	"fmt"

	"github.com/sqlforge/sqlforge/utils"
)

type Value struct {
	Val any
}

func NewValue(val any) *Value {
	return &Value{Val: val}
}

func (v *Value) Type() NodeType           { return NodeValue }
func (v *Value) Accept(vis Visitor) error { return vis.VisitValue(v) }
func (v *Value) Fingerprint() uint64 {
	// Type goes into the hash so 1 and "1" render from separate cache slots.
	return utils.FingerprintString(fmt.Sprintf("val:%T:%v", v.Val, v.Val))
}
