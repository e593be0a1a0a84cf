package ast

import (
	"hash/fnv"

	"github.com/sqlforge/sqlforge/utils"
)

type Assignment struct {
	Column string
	Value  Node
}

// AssignmentList is the ordered column/value set of an INSERT or UPDATE.
// Columns are unique; setting an existing column replaces its value in
// place, so the rendered column order stays deterministic.
type AssignmentList struct {
	Items []Assignment
}

func (a *AssignmentList) Set(column string, value Node) {
	for i := range a.Items {
		if a.Items[i].Column == column {
			a.Items[i].Value = value
			return
		}
	}
	a.Items = append(a.Items, Assignment{Column: column, Value: value})
}

func (a *AssignmentList) Empty() bool {
	return a == nil || len(a.Items) == 0
}

func (a *AssignmentList) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("assign:"))
	for _, item := range a.Items {
		h.Write([]byte(item.Column + "="))
		h.Write(utils.U64ToBytes(item.Value.Fingerprint()))
	}
	return h.Sum64()
}
