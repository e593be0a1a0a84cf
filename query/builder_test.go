package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, b *Builder) string {
	t.Helper()
	sql, _, err := b.Build()
	require.NoError(t, err)
	return sql
}

func TestSelectDefaultsToStar(t *testing.T) {
	b := New("banks", "ras_forms")
	assert.Equal(t, "SELECT * FROM banks.ras_forms", build(t, b))
}

func TestSelectWithoutSchema(t *testing.T) {
	b := New("", "ras_forms").Select("uuid", "file")
	assert.Equal(t, "SELECT uuid, file FROM ras_forms", build(t, b))
}

func TestSelectPreservesCallOrderAndDuplicates(t *testing.T) {
	b := New("my_schema", "my_table").Select("a", "b").Select("a")
	assert.Equal(t, "SELECT a, b, a FROM my_schema.my_table", build(t, b))
}

func TestWhereAndOrPrecedence(t *testing.T) {
	// Left-to-right chaining: a AND b OR c needs no parentheses.
	b := New("", "t").Select("x").Where("a").AndWhere("b").OrWhere("c")
	assert.Equal(t, "SELECT x FROM t WHERE a AND b OR c", build(t, b))

	// The OR side is parenthesized when AND follows it.
	b = New("", "t").Select("x").Where("a").OrWhere("b").AndWhere("c")
	assert.Equal(t, "SELECT x FROM t WHERE (a OR b) AND c", build(t, b))
}

func TestWhereSingleLeafNoParens(t *testing.T) {
	b := New("", "t").Where("age > 18")
	assert.Equal(t, "SELECT * FROM t WHERE age > 18", build(t, b))
}

func TestInWhereInline(t *testing.T) {
	b := New("", "t").InWhere("age", []any{18, 21})
	assert.Equal(t, "SELECT * FROM t WHERE age IN (18, 21)", build(t, b))
}

func TestInWhereParameterized(t *testing.T) {
	b := New("", "t").InWhere("age", []any{18, 21}).Parameterized(true)
	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t WHERE age IN ($1, $2)", sql)
	assert.Equal(t, []any{18, 21}, args)
}

func TestInWhereCombinesWithAnd(t *testing.T) {
	b := New("", "t").Where("active").InWhere("age", []any{18})
	assert.Equal(t, "SELECT * FROM t WHERE active AND age IN (18)", build(t, b))
}

func TestIsWhere(t *testing.T) {
	b := New("", "t").IsWhere("deleted_at", true)
	assert.Equal(t, "SELECT * FROM t WHERE deleted_at IS NULL", build(t, b))

	b = New("", "t").IsWhere("deleted_at", false)
	assert.Equal(t, "SELECT * FROM t WHERE deleted_at IS NOT NULL", build(t, b))
}

func TestJoinQualifiesWithSchema(t *testing.T) {
	b := New("my_schema", "my_table").
		Join("orders", "my_table.id = orders.customer_id").
		Select("my_table.name", "orders.order_date")
	assert.Equal(t,
		"SELECT my_table.name, orders.order_date FROM my_schema.my_table INNER JOIN my_schema.orders ON my_table.id = orders.customer_id",
		build(t, b))
}

func TestJoinKinds(t *testing.T) {
	tests := []struct {
		name    string
		b       *Builder
		keyword string
	}{
		{"left", New("s", "t").LeftJoin("u", "t.id = u.id"), "LEFT JOIN"},
		{"right", New("s", "t").RightJoin("u", "t.id = u.id"), "RIGHT JOIN"},
		{"full", New("s", "t").FullJoin("u", "t.id = u.id"), "FULL JOIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "SELECT * FROM s.t "+tt.keyword+" s.u ON t.id = u.id", build(t, tt.b))
		})
	}
}

func TestJoinMultipleConditions(t *testing.T) {
	b := New("banks", "ras_forms").
		Join("orders", "ras_forms.id = orders.custom_id", "orders.order_date > '2021-01-01'")
	assert.Equal(t,
		"SELECT * FROM banks.ras_forms INNER JOIN banks.orders ON ras_forms.id = orders.custom_id AND orders.order_date > '2021-01-01'",
		build(t, b))
}

func TestJoinWithoutConditionFails(t *testing.T) {
	b := New("s", "t").Join("orders")
	_, _, err := b.Build()
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
}

func TestGroupByOrderBy(t *testing.T) {
	b := New("", "t").Select("a", "b", "c").GroupBy("a", "b").OrderBy("a", "b")
	assert.Equal(t, "SELECT a, b, c FROM t GROUP BY a, b ORDER BY a, b", build(t, b))
}

func TestOrderByDesc(t *testing.T) {
	b := New("", "t").Select("c").OrderBy("a").OrderByDesc("c")
	assert.Equal(t, "SELECT c FROM t ORDER BY a, c DESC", build(t, b))
}

func TestHavingAndLimit(t *testing.T) {
	b := New("", "t").Select("region").GroupBy("region").Having("SUM(amount) > 100").Limit(10)
	assert.Equal(t, "SELECT region FROM t GROUP BY region HAVING SUM(amount) > 100 LIMIT 10", build(t, b))
}

func TestLimitOffset(t *testing.T) {
	b := New("", "t").Select("a").LimitOffset(10, 20)
	assert.Equal(t, "SELECT a FROM t LIMIT 10 OFFSET 20", build(t, b))
}

func TestInsertFromMap(t *testing.T) {
	b := New("my_schema", "my_table").Insert(map[string]any{"name": "Alice", "age": 25})
	assert.Equal(t, "INSERT INTO my_schema.my_table (age, name) VALUES (25, 'Alice')", build(t, b))
}

func TestInsertMapAndAssignsRenderIdentically(t *testing.T) {
	fromMap := New("s", "t").Insert(map[string]any{"a": 1, "b": 2})
	fromAssigns := New("s", "t").Insert(nil, Assign{"a", 1}, Assign{"b", 2})
	assert.Equal(t, build(t, fromMap), build(t, fromAssigns))
}

func TestInsertAssignsWinOverMap(t *testing.T) {
	b := New("s", "t").Insert(map[string]any{"a": 1}, Assign{"a", 2})
	assert.Equal(t, "INSERT INTO s.t (a) VALUES (2)", build(t, b))
}

func TestInsertParameterized(t *testing.T) {
	b := New("s", "t").Insert(map[string]any{"a": 1, "b": "x"}).Parameterized(true)
	sql, args, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO s.t (a, b) VALUES ($1, $2)", sql)
	assert.Equal(t, []any{1, "x"}, args)
}

func TestInsertEmptyFails(t *testing.T) {
	b := New("s", "t").Insert(nil)
	_, _, err := b.Build()
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
}

func TestInsertReturning(t *testing.T) {
	b := New("my_schema", "my_table").Insert(map[string]any{"name": "Alice"}).Returning("id")
	assert.Equal(t, "INSERT INTO my_schema.my_table (name) VALUES ('Alice') RETURNING id", build(t, b))
}

func TestReturningStar(t *testing.T) {
	b := New("s", "t").Insert(map[string]any{"a": 1}).Returning()
	assert.Equal(t, "INSERT INTO s.t (a) VALUES (1) RETURNING *", build(t, b))
}

func TestUpdateRequiresWhere(t *testing.T) {
	b := New("my_schema", "my_table").Set(map[string]any{"name": "Alice"})
	_, _, err := b.Build()
	var werr *WhereError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, KindUpdate, werr.Kind)

	// State is untouched by the failed build; adding the predicate fixes it.
	b.Where("id = 1")
	assert.Equal(t, "UPDATE my_schema.my_table SET name = 'Alice' WHERE id = 1", build(t, b))
}

func TestUpdateIgnoreErrors(t *testing.T) {
	b := New("s", "t").Set(map[string]any{"a": 1}).IgnoreErrors(true)
	assert.Equal(t, "UPDATE s.t SET a = 1", build(t, b))
}

func TestDeleteRequiresWhere(t *testing.T) {
	b := New("s", "t").Delete()
	_, _, err := b.Build()
	var werr *WhereError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, KindDelete, werr.Kind)
}

func TestDeleteWithWhere(t *testing.T) {
	b := New("my_schema", "my_table").Delete().Where("age < 18").AndWhere("gender = 'male'")
	assert.Equal(t, "DELETE FROM my_schema.my_table WHERE age < 18 AND gender = 'male'", build(t, b))
}

func TestDeleteIgnoreErrors(t *testing.T) {
	b := New("s", "t").Delete().IgnoreErrors(true)
	assert.Equal(t, "DELETE FROM s.t", build(t, b))
}

func TestStatementKindLastCallWins(t *testing.T) {
	b := New("s", "t").Insert(map[string]any{"a": 1}).Delete().Where("a = 1")
	assert.Equal(t, "DELETE FROM s.t WHERE a = 1", build(t, b))
}

func TestClearReproducesFreshOutput(t *testing.T) {
	b := New("my_schema", "my_table").Select("uuid")
	first := build(t, b)

	b.Select("file").Where("x = 1").GroupBy("uuid")
	b.Clear().Select("uuid")
	assert.Equal(t, first, build(t, b))

	fresh := New("my_schema", "my_table").Select("uuid")
	assert.Equal(t, first, build(t, fresh))
}

func TestCTEPreamble(t *testing.T) {
	inner := New("my_schema", "sales").Select("region", "SUM(amount)").GroupBy("region")
	outer := New("my_schema", "orders").
		WithAs("t1", inner).
		Select("region").
		Join("t1", "orders.region = t1.region")
	assert.Equal(t,
		"WITH t1 AS (SELECT region, SUM(amount) FROM my_schema.sales GROUP BY region) SELECT region FROM my_schema.orders INNER JOIN t1 ON orders.region = t1.region",
		build(t, outer))
}

func TestCTEOrderAndOverwrite(t *testing.T) {
	a := New("", "a_src").Select("x")
	b := New("", "b_src").Select("y")
	replacement := New("", "c_src").Select("z")

	outer := New("", "t").WithAs("first", a).WithAs("second", b).WithAs("first", replacement)
	assert.Equal(t,
		"WITH first AS (SELECT z FROM c_src), second AS (SELECT y FROM b_src) SELECT * FROM t",
		build(t, outer))
}

func TestCTEInnerGateApplies(t *testing.T) {
	inner := New("", "t").Delete()
	outer := New("", "u").WithAs("danger", inner)
	_, _, err := outer.Build()
	var werr *WhereError
	require.ErrorAs(t, err, &werr)
}

func TestMutatingCTEWithReturning(t *testing.T) {
	inner := New("", "archive").Delete().Where("stale").Returning("id")
	outer := New("", "t").WithAs("purged", inner).Select("count(*)")
	assert.Equal(t,
		"WITH purged AS (DELETE FROM archive WHERE stale RETURNING id) SELECT count(*) FROM t",
		build(t, outer))
}

func TestEmptyTableNameFails(t *testing.T) {
	b := New("s", "")
	_, _, err := b.Build()
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
}

func TestInWhereEmptyValuesFails(t *testing.T) {
	b := New("s", "t").InWhere("age", nil)
	_, _, err := b.Build()
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
}

func TestStructuralErrorClearedOnlyByClear(t *testing.T) {
	b := New("s", "t").Join("orders")

	// A corrected call does not erase the recorded error.
	b.Join("orders", "t.id = orders.id")
	_, _, err := b.Build()
	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)

	b.Clear().Join("orders", "t.id = orders.id")
	assert.Equal(t, "SELECT * FROM s.t INNER JOIN s.orders ON t.id = orders.id", build(t, b))
}

func TestBuildDoesNotMutateState(t *testing.T) {
	b := New("s", "t").Select("a").Where("x = 1")
	first := build(t, b)
	assert.Equal(t, first, build(t, b))
}

func TestFingerprintStableAcrossBuilds(t *testing.T) {
	b := New("s", "t").Select("a").Where("x = 1")
	fp := b.Fingerprint()
	assert.NotZero(t, fp)

	build(t, b)
	assert.Equal(t, fp, b.Fingerprint())

	// Unassemblable statements have no fingerprint.
	assert.Zero(t, New("s", "t").Delete().Fingerprint())
}
