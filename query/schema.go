package query

import (
	"github.com/sqlforge/sqlforge/ast"
	"github.com/sqlforge/sqlforge/schema"
)

// NewFor derives the target table name from a Go type name using the
// default naming strategy: NewFor("shop", "OrderItem") targets
// shop.order_items.
func NewFor(schemaName, typeName string) *Builder {
	return New(schemaName, schema.DefaultNaming().TableName(typeName))
}

// InsertWithID is Insert with a generated key: the named generator
// ("uuid", "ulid", or anything registered with schema.RegisterGenerator)
// fills idColumn. The generated value overrides any value passed for the
// same column.
func (b *Builder) InsertWithID(idColumn, generator string, values map[string]any, assigns ...Assign) *Builder {
	id, err := schema.GenerateID(generator)
	if err != nil {
		b.addError(&QueryError{Op: "insert", Reason: err.Error()})
		return b
	}
	b.kind = KindInsert
	if len(values) > 0 || len(assigns) > 0 {
		b.mergeAssignments("insert", values, assigns)
	}
	b.assigns.Set(idColumn, ast.NewValue(id))
	return b
}
