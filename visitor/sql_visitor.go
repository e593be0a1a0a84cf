package visitor

import (
	"strconv"
	"strings"
	"sync"

	"github.com/sqlforge/sqlforge/ast"
	"github.com/sqlforge/sqlforge/cache"
	"github.com/sqlforge/sqlforge/dialect"
	"github.com/sqlforge/sqlforge/utils"
)

var visitorPool = sync.Pool{
	New: func() any {
		return &SQLVisitor{
			args: make([]any, 0, 8),
		}
	},
}

// SQLVisitor renders an ast statement into its final SQL text. Each clause
// family has its own Visit method; the statement methods stitch them
// together in the fixed order the dialect expects. Rendering never mutates
// the tree, so a failed build leaves the statement intact.
type SQLVisitor struct {
	sb      strings.Builder
	args    []any
	dialect dialect.Dialect
	qcache  cache.QueryCache
	inline  bool
}

func NewSQLVisitor(d dialect.Dialect, q cache.QueryCache) *SQLVisitor {
	v := visitorPool.Get().(*SQLVisitor)
	v.dialect = d
	v.qcache = q
	v.inline = true
	v.sb.Reset()
	v.args = v.args[:0]
	return v
}

func (v *SQLVisitor) GetSB() *strings.Builder {
	return &v.sb
}

// SetInline switches between inline literals (true, the default) and
// dialect placeholders with collected bind args (false).
func (v *SQLVisitor) SetInline(inline bool) {
	v.inline = inline
}

// Release returns the visitor to the pool.
func (v *SQLVisitor) Release() {
	v.dialect = nil
	v.qcache = nil
	v.sb.Reset()
	v.args = v.args[:0]
	visitorPool.Put(v)
}

func (v *SQLVisitor) Reset() {
	v.sb.Reset()
	v.args = v.args[:0]
}

func (v *SQLVisitor) Build(root ast.Node) (string, []any, error) {
	// Only inline renderings are cached: their text fully determines the
	// result and depends on the dialect, so the dialect is part of the
	// key. Parameterized builds carry per-build bound values and render
	// fresh every time.
	var fp uint64
	cacheable := v.inline && v.qcache != nil
	if cacheable {
		fp = utils.Mix64(root.Fingerprint(), utils.FingerprintString(v.dialect.Name()))
		if cached, ok := v.qcache.Get(fp); ok && cached != nil {
			return cached.SQL, nil, nil
		}
	}

	v.sb.Reset()
	v.args = v.args[:0]

	if err := root.Accept(v); err != nil {
		return "", nil, err
	}

	sql := v.sb.String()
	var args []any
	if len(v.args) > 0 {
		args = make([]any, len(v.args))
		copy(args, v.args)
	}

	if cacheable {
		v.qcache.Set(fp, &cache.CachedQuery{SQL: sql})
	}
	return sql, args, nil
}

func (v *SQLVisitor) Arg(a any) {
	v.args = append(v.args, a)
}

// --- statements ---

func (v *SQLVisitor) VisitSelect(s *ast.SelectStmt) error {
	if err := v.writeWith(s.With); err != nil {
		return err
	}

	v.sb.WriteString("SELECT ")

	if len(s.Columns) == 0 {
		v.sb.WriteByte('*')
	}
	for i, col := range s.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := col.Accept(v); err != nil {
			return err
		}
	}

	if s.From != nil {
		v.sb.WriteString(" FROM ")
		if err := s.From.Accept(v); err != nil {
			return err
		}
	}

	for _, join := range s.Joins {
		if err := join.Accept(v); err != nil {
			return err
		}
	}

	if !s.Where.Empty() {
		if err := s.Where.Accept(v); err != nil {
			return err
		}
	}

	if s.GroupBy != nil {
		if err := s.GroupBy.Accept(v); err != nil {
			return err
		}
	}

	if s.Having != nil {
		v.sb.WriteString(" HAVING ")
		if err := s.Having.Accept(v); err != nil {
			return err
		}
	}

	if s.OrderBy != nil {
		if err := s.OrderBy.Accept(v); err != nil {
			return err
		}
	}

	if s.Limit != nil {
		if err := s.Limit.Accept(v); err != nil {
			return err
		}
	}

	return nil
}

func (v *SQLVisitor) VisitInsert(stmt *ast.InsertStmt) error {
	if err := v.writeWith(stmt.With); err != nil {
		return err
	}

	v.sb.WriteString("INSERT INTO ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}

	v.sb.WriteString(" (")
	for i, item := range stmt.Assignments.Items {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(item.Column))
	}
	v.sb.WriteString(") VALUES (")
	for i, item := range stmt.Assignments.Items {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := item.Value.Accept(v); err != nil {
			return err
		}
	}
	v.sb.WriteByte(')')

	return v.writeReturning(stmt.Returning)
}

func (v *SQLVisitor) VisitUpdate(stmt *ast.UpdateStmt) error {
	if err := v.writeWith(stmt.With); err != nil {
		return err
	}

	v.sb.WriteString("UPDATE ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}

	v.sb.WriteString(" SET ")
	for i, item := range stmt.Assignments.Items {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(item.Column))
		v.sb.WriteString(" = ")
		if err := item.Value.Accept(v); err != nil {
			return err
		}
	}

	if !stmt.Where.Empty() {
		if err := stmt.Where.Accept(v); err != nil {
			return err
		}
	}

	return v.writeReturning(stmt.Returning)
}

func (v *SQLVisitor) VisitDelete(stmt *ast.DeleteStmt) error {
	if err := v.writeWith(stmt.With); err != nil {
		return err
	}

	v.sb.WriteString("DELETE FROM ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}

	if !stmt.Where.Empty() {
		if err := stmt.Where.Accept(v); err != nil {
			return err
		}
	}

	return v.writeReturning(stmt.Returning)
}

// --- leaf nodes ---

func (v *SQLVisitor) VisitColumn(c *ast.Column) error {
	if c.Table != "" {
		v.sb.WriteString(v.dialect.QuoteIdentifier(c.Table))
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(c.Name))

	if c.Alias != "" && c.Alias != c.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(c.Alias))
	}

	return nil
}

func (v *SQLVisitor) VisitTable(t *ast.Table) error {
	if t.Schema != "" {
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Schema))
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(t.Name))

	if t.Alias != "" && t.Alias != t.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Alias))
	}

	return nil
}

func (v *SQLVisitor) VisitRaw(r *ast.Raw) error {
	v.sb.WriteString(r.Text)
	return nil
}

func (v *SQLVisitor) VisitValue(val *ast.Value) error {
	if v.inline {
		v.sb.WriteString(v.dialect.RenderValue(val.Val))
		return nil
	}
	v.sb.WriteString(v.dialect.Placeholder(len(v.args) + 1))
	v.Arg(val.Val)
	return nil
}

func (v *SQLVisitor) VisitArray(a *ast.Array) error {
	v.sb.WriteByte('(')
	for i, val := range a.Values {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if v.inline {
			v.sb.WriteString(v.dialect.RenderValue(val.Val))
			continue
		}
		v.sb.WriteString(v.dialect.Placeholder(len(v.args) + 1))
		v.Arg(val.Val)
	}
	v.sb.WriteByte(')')
	return nil
}

// --- expressions ---

func (v *SQLVisitor) VisitBinaryExpr(expr *ast.BinaryExpr) error {
	if err := v.visitOperand(expr.Left, expr.Operator); err != nil {
		return err
	}

	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	v.sb.WriteByte(' ')

	return v.visitOperand(expr.Right, expr.Operator)
}

// visitOperand parenthesizes OR subtrees under an AND parent so the
// left-to-right chaining order survives SQL operator precedence.
func (v *SQLVisitor) visitOperand(n ast.Node, parentOp string) error {
	if parentOp == ast.OpAnd {
		if b, ok := n.(*ast.BinaryExpr); ok && b.Operator == ast.OpOr {
			grouped := ast.GroupedExpr{Expr: n}
			return grouped.Accept(v)
		}
	}
	return n.Accept(v)
}

func (v *SQLVisitor) VisitUnaryExpr(expr *ast.UnaryExpr) error {
	if expr.IsPrefix {
		v.sb.WriteString(expr.Operator)
		v.sb.WriteByte(' ')
		return expr.Operand.Accept(v)
	}

	if err := expr.Operand.Accept(v); err != nil {
		return err
	}
	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	return nil
}

func (v *SQLVisitor) VisitGroupedExpr(g *ast.GroupedExpr) error {
	v.sb.WriteByte('(')
	err := g.Expr.Accept(v)
	v.sb.WriteByte(')')
	return err
}

// --- clauses ---

func (v *SQLVisitor) VisitWhereClause(clause *ast.WhereClause) error {
	if clause.Empty() {
		return nil
	}
	v.sb.WriteString(" WHERE ")
	return clause.Cond.Accept(v)
}

func (v *SQLVisitor) VisitJoinClause(clause *ast.JoinClause) error {
	if clause == nil || clause.Table == nil {
		return nil
	}

	v.sb.WriteByte(' ')
	v.sb.WriteString(clause.Kind.Keyword())
	v.sb.WriteByte(' ')
	if err := clause.Table.Accept(v); err != nil {
		return err
	}

	if clause.Cond != nil {
		v.sb.WriteString(" ON ")
		if err := clause.Cond.Accept(v); err != nil {
			return err
		}
	}

	return nil
}

func (v *SQLVisitor) VisitGroupBy(g *ast.GroupByClause) error {
	if len(g.Exprs) == 0 {
		return nil
	}
	v.sb.WriteString(" GROUP BY ")
	for i, expr := range g.Exprs {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := expr.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (v *SQLVisitor) VisitOrderBy(clause *ast.OrderByClause) error {
	if len(clause.Items) == 0 {
		return nil
	}
	v.sb.WriteString(" ORDER BY ")
	for i, item := range clause.Items {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := item.Expr.Accept(v); err != nil {
			return err
		}
		if item.Desc {
			v.sb.WriteString(" DESC")
		}
	}
	return nil
}

func (v *SQLVisitor) VisitLimitClause(clause *ast.LimitClause) error {
	v.sb.WriteString(" LIMIT ")
	v.sb.WriteString(strconv.Itoa(clause.Count))

	if clause.Offset != nil {
		v.sb.WriteString(" OFFSET ")
		v.sb.WriteString(strconv.Itoa(*clause.Offset))
	}

	return nil
}

func (v *SQLVisitor) VisitReturning(r *ast.ReturningClause) error {
	v.sb.WriteString(" RETURNING ")
	if len(r.Columns) == 0 {
		v.sb.WriteByte('*')
		return nil
	}
	for i, col := range r.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(col))
	}
	return nil
}

func (v *SQLVisitor) VisitWith(w *ast.WithClause) error {
	v.sb.WriteString("WITH ")
	for i, cte := range w.CTEs {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(cte.Name))
		v.sb.WriteString(" AS (")
		if err := cte.Stmt.Accept(v); err != nil {
			return err
		}
		v.sb.WriteByte(')')
	}
	return nil
}

func (v *SQLVisitor) writeWith(w *ast.WithClause) error {
	if w.Empty() {
		return nil
	}
	if err := w.Accept(v); err != nil {
		return err
	}
	v.sb.WriteByte(' ')
	return nil
}

func (v *SQLVisitor) writeReturning(r *ast.ReturningClause) error {
	if r == nil {
		return nil
	}
	return r.Accept(v)
}
