package ast

import "github.com/sqlforge/sqlforge/utils"

// Raw is an opaque SQL fragment supplied by the caller. The text is passed
// through verbatim; no parsing or escaping happens here.
type Raw struct {
	Text string
}

func NewRaw(text string) *Raw {
	return &Raw{Text: text}
}

func (r *Raw) Type() NodeType         { return NodeRaw }
func (r *Raw) Accept(v Visitor) error { return v.VisitRaw(r) }
func (r *Raw) Fingerprint() uint64 {
	return utils.FingerprintString("raw:" + r.Text)
}
