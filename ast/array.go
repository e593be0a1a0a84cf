package ast

import (
	"fmt"
	"hash/fnv"
)

type Array struct {
	Values []Value
}

func NewArray(values []any) *Array {
	a := &Array{Values: make([]Value, 0, len(values))}
	for _, val := range values {
		a.Values = append(a.Values, Value{Val: val})
	}
	return a
}

func (a *Array) Type() NodeType         { return NodeArray }
func (a *Array) Accept(v Visitor) error { return v.VisitArray(a) }
func (a *Array) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("array:"))
	for _, val := range a.Values {
		h.Write([]byte(fmt.Sprintf("%T:%v,", val.Val, val.Val)))
	}
	return h.Sum64()
}
