package query

import (
	"sort"

	"github.com/sqlforge/sqlforge/ast"
	"github.com/sqlforge/sqlforge/cache"
	"github.com/sqlforge/sqlforge/dialect"
	"github.com/sqlforge/sqlforge/visitor"
)

// Kind is the statement family a builder will render.
type Kind int

const (
	KindSelect Kind = iota
	KindInsert
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "INSERT"
	case KindUpdate:
		return "UPDATE"
	case KindDelete:
		return "DELETE"
	default:
		return "SELECT"
	}
}

// Assign is the named-argument form of an INSERT/UPDATE column value.
// Assign pairs passed next to a map win on duplicate columns.
type Assign struct {
	Column string
	Value  any
}

type cteEntry struct {
	name  string
	inner *Builder
}

type joinEntry struct {
	kind  ast.JoinType
	table string
	cond  ast.Node
}

var defaultCache = cache.NewQueryCache()

// Builder accumulates statement state across fluent calls and renders it
// on Build. Every mutator returns the same builder. Builders are not safe
// for concurrent use; callers sharing one must serialize the whole
// mutate-then-build sequence.
type Builder struct {
	schema  string
	table   string
	visitor *visitor.SQLVisitor

	kind      Kind
	columns   []ast.Node
	where     *ast.WhereClause
	joins     []joinEntry
	groupBy   *ast.GroupByClause
	having    ast.Node
	orderBy   *ast.OrderByClause
	limit     *ast.LimitClause
	assigns   *ast.AssignmentList
	ctes      []cteEntry
	returning *ast.ReturningClause

	ignoreErrors bool
	inline       bool
	raw          string
	errs         []error
}

// New creates a builder bound to schema.table, rendering for PostgreSQL
// with inline literals. Pass an empty schema to render bare table names.
func New(schema, table string) *Builder {
	return NewWithVisitor(schema, table, visitor.NewSQLVisitor(dialect.NewPostgresDialect(), defaultCache))
}

// NewWithVisitor creates a builder rendering through v.
func NewWithVisitor(schema, table string, v *visitor.SQLVisitor) *Builder {
	b := &Builder{
		schema:  schema,
		table:   table,
		visitor: v,
		inline:  true,
	}
	b.reset()
	if table == "" {
		b.addError(&QueryError{Op: "new", Reason: "table name is empty"})
	}
	return b
}

func (b *Builder) reset() {
	b.kind = KindSelect
	b.columns = nil
	b.where = &ast.WhereClause{}
	b.joins = nil
	b.groupBy = &ast.GroupByClause{}
	b.having = nil
	b.orderBy = &ast.OrderByClause{}
	b.limit = nil
	b.assigns = &ast.AssignmentList{}
	b.ctes = nil
	b.returning = nil
	b.ignoreErrors = false
	b.raw = ""
	b.errs = nil
}

// Clear resets all accumulated clause state, keeping the target.
func (b *Builder) Clear() *Builder {
	b.reset()
	if b.table == "" {
		b.addError(&QueryError{Op: "new", Reason: "table name is empty"})
	}
	return b
}

func (b *Builder) addError(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

// Err returns the first structural error recorded by a mutator, if any.
// Recorded errors stick: a later corrected call does not erase them, and
// Build keeps failing until Clear resets the builder.
func (b *Builder) Err() error {
	if len(b.errs) > 0 {
		return b.errs[0]
	}
	return nil
}

// --- projection ---

// Select appends column expressions to the projection in call order.
// Duplicates are kept. With no projection at all, SELECT renders *.
func (b *Builder) Select(columns ...string) *Builder {
	b.columns = append(b.columns, ast.RawExprs(columns...)...)
	return b
}

// --- predicates ---

// Where AND-combines an opaque predicate fragment into the filter tree.
func (b *Builder) Where(predicate string) *Builder {
	b.where.And(ast.NewRaw(predicate))
	return b
}

// AndWhere is Where under its combinator name.
func (b *Builder) AndWhere(predicate string) *Builder {
	return b.Where(predicate)
}

// OrWhere OR-combines an opaque predicate fragment into the filter tree.
func (b *Builder) OrWhere(predicate string) *Builder {
	b.where.Or(ast.NewRaw(predicate))
	return b
}

// InWhere AND-combines "column IN (values...)".
func (b *Builder) InWhere(column string, values []any) *Builder {
	if len(values) == 0 {
		b.addError(&QueryError{Op: "in_where", Reason: "empty value list for column " + column})
		return b
	}
	b.where.And(ast.InCondition(column, values))
	return b
}

// IsWhere AND-combines "column IS NULL" (isNull true) or
// "column IS NOT NULL" (isNull false).
func (b *Builder) IsWhere(column string, isNull bool) *Builder {
	b.where.And(ast.NullCondition(column, isNull))
	return b
}

// --- grouping / ordering ---

func (b *Builder) GroupBy(columns ...string) *Builder {
	b.groupBy.Append(ast.RawExprs(columns...)...)
	return b
}

func (b *Builder) Having(condition string) *Builder {
	b.having = ast.NewRaw(condition)
	return b
}

func (b *Builder) OrderBy(columns ...string) *Builder {
	b.orderBy.Append(false, ast.RawExprs(columns...)...)
	return b
}

func (b *Builder) OrderByDesc(columns ...string) *Builder {
	b.orderBy.Append(true, ast.RawExprs(columns...)...)
	return b
}

func (b *Builder) Limit(n int) *Builder {
	b.limit = ast.NewLimitClause(n, nil)
	return b
}

func (b *Builder) LimitOffset(n, offset int) *Builder {
	b.limit = ast.NewLimitClause(n, &offset)
	return b
}

// --- statement kind ---

// Insert switches the builder to INSERT and merges the given column
// values. Map keys are folded in sorted order; Assign pairs follow in
// call order and win on duplicates. Calling another action later
// overrides the kind (last call wins).
func (b *Builder) Insert(values map[string]any, assigns ...Assign) *Builder {
	b.kind = KindInsert
	b.mergeAssignments("insert", values, assigns)
	return b
}

// Set switches the builder to UPDATE and merges the given column values,
// with the same normalization as Insert.
func (b *Builder) Set(values map[string]any, assigns ...Assign) *Builder {
	b.kind = KindUpdate
	b.mergeAssignments("set", values, assigns)
	return b
}

// Update is an alias for Set.
func (b *Builder) Update(values map[string]any, assigns ...Assign) *Builder {
	return b.Set(values, assigns...)
}

// Delete switches the builder to DELETE.
func (b *Builder) Delete() *Builder {
	b.kind = KindDelete
	return b
}

func (b *Builder) mergeAssignments(op string, values map[string]any, assigns []Assign) {
	if len(values) == 0 && len(assigns) == 0 {
		b.addError(&QueryError{Op: op, Reason: "no column values passed"})
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.assigns.Set(k, ast.NewValue(values[k]))
	}
	for _, a := range assigns {
		b.assigns.Set(a.Column, ast.NewValue(a.Value))
	}
}

// --- joins ---

// Join appends an INNER JOIN against the builder's schema. Multiple
// condition fragments are AND-combined into the ON clause.
func (b *Builder) Join(table string, conditions ...string) *Builder {
	return b.join(ast.JoinInner, table, conditions)
}

func (b *Builder) LeftJoin(table string, conditions ...string) *Builder {
	return b.join(ast.JoinLeft, table, conditions)
}

func (b *Builder) RightJoin(table string, conditions ...string) *Builder {
	return b.join(ast.JoinRight, table, conditions)
}

func (b *Builder) FullJoin(table string, conditions ...string) *Builder {
	return b.join(ast.JoinFull, table, conditions)
}

func (b *Builder) join(kind ast.JoinType, table string, conditions []string) *Builder {
	if len(conditions) == 0 {
		b.addError(&QueryError{Op: "join", Reason: "no ON condition for table " + table})
		return b
	}
	b.joins = append(b.joins, joinEntry{
		kind:  kind,
		table: table,
		cond:  ast.AndAll(ast.RawExprs(conditions...)),
	})
	return b
}

// --- CTEs ---

// WithAs registers a named CTE whose statement is the inner builder's.
// Names are unique per statement; reusing a name replaces the inner
// builder while keeping the CTE's original position. The inner builder
// stays independent and is assembled (safety gate included) when the
// outer statement builds.
func (b *Builder) WithAs(name string, inner *Builder) *Builder {
	if name == "" || inner == nil {
		b.addError(&QueryError{Op: "with_as", Reason: "CTE needs a name and a builder"})
		return b
	}
	for i := range b.ctes {
		if b.ctes[i].name == name {
			b.ctes[i].inner = inner
			return b
		}
	}
	b.ctes = append(b.ctes, cteEntry{name: name, inner: inner})
	return b
}

// --- flags ---

// Returning appends a RETURNING clause to a mutating statement. With no
// columns it renders RETURNING *.
func (b *Builder) Returning(columns ...string) *Builder {
	b.returning = &ast.ReturningClause{Columns: columns}
	return b
}

// IgnoreErrors suppresses the missing-WHERE check on UPDATE and DELETE.
func (b *Builder) IgnoreErrors(v bool) *Builder {
	b.ignoreErrors = v
	return b
}

// Parameterized switches Build to emit dialect placeholders and return
// the values as bound args instead of inlining literals.
func (b *Builder) Parameterized(v bool) *Builder {
	b.inline = !v
	return b
}

// --- finalize ---

// Build validates and renders the accumulated statement, returning the
// SQL text and any bound values. Build never mutates clause state, so a
// failed build can be corrected and retried on the same builder.
func (b *Builder) Build() (string, []any, error) {
	node, err := b.stmtNode()
	if err != nil {
		return "", nil, err
	}
	b.visitor.SetInline(b.inline)
	return b.visitor.Build(node)
}

// Fingerprint identifies the assembled statement tree, literal values
// included. Returns 0 when the statement cannot be assembled.
func (b *Builder) Fingerprint() uint64 {
	node, err := b.stmtNode()
	if err != nil {
		return 0
	}
	return node.Fingerprint()
}

// stmtNode assembles the ast root for the current kind. The safety gate
// runs here, before any rendering.
func (b *Builder) stmtNode() (ast.Node, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	if b.raw != "" {
		return ast.NewRaw(b.raw), nil
	}

	with, err := b.withClause()
	if err != nil {
		return nil, err
	}
	target := ast.NewTable(b.schema, b.table, "")

	switch b.kind {
	case KindInsert:
		if b.assigns.Empty() {
			return nil, &QueryError{Op: "insert", Reason: "no column values passed"}
		}
		return &ast.InsertStmt{
			With:        with,
			Table:       target,
			Assignments: b.assigns,
			Returning:   b.returning,
		}, nil

	case KindUpdate:
		if b.assigns.Empty() {
			return nil, &QueryError{Op: "set", Reason: "no column values passed"}
		}
		if b.where.Empty() && !b.ignoreErrors {
			return nil, &WhereError{Kind: KindUpdate}
		}
		return &ast.UpdateStmt{
			With:        with,
			Table:       target,
			Assignments: b.assigns,
			Where:       b.where,
			Returning:   b.returning,
		}, nil

	case KindDelete:
		if b.where.Empty() && !b.ignoreErrors {
			return nil, &WhereError{Kind: KindDelete}
		}
		return &ast.DeleteStmt{
			With:      with,
			Table:     target,
			Where:     b.where,
			Returning: b.returning,
		}, nil

	default:
		return &ast.SelectStmt{
			With:    with,
			Columns: b.columns,
			From:    target,
			Joins:   b.joinClauses(),
			Where:   b.where,
			GroupBy: b.groupBy,
			Having:  b.having,
			OrderBy: b.orderBy,
			Limit:   b.limit,
		}, nil
	}
}

// withClause assembles registered CTEs in insertion order. Each inner
// builder goes through its own gate so a malformed CTE fails the whole
// build.
func (b *Builder) withClause() (*ast.WithClause, error) {
	if len(b.ctes) == 0 {
		return nil, nil
	}
	with := &ast.WithClause{}
	for _, cte := range b.ctes {
		stmt, err := cte.inner.stmtNode()
		if err != nil {
			return nil, err
		}
		with.Put(cte.name, stmt)
	}
	return with, nil
}

// joinClauses qualifies join targets with the builder's schema, except
// when the joined name is one of this statement's CTEs.
func (b *Builder) joinClauses() []*ast.JoinClause {
	if len(b.joins) == 0 {
		return nil
	}
	clauses := make([]*ast.JoinClause, 0, len(b.joins))
	for _, j := range b.joins {
		schema := b.schema
		if b.isCTE(j.table) {
			schema = ""
		}
		clauses = append(clauses, ast.NewJoinClause(j.kind, ast.NewTable(schema, j.table, ""), j.cond))
	}
	return clauses
}

func (b *Builder) isCTE(name string) bool {
	for _, cte := range b.ctes {
		if cte.name == name {
			return true
		}
	}
	return false
}
