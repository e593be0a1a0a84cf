package dialect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDialectNames(t *testing.T) {
	assert.Equal(t, "postgres", NewPostgresDialect().Name())
	assert.Equal(t, "mysql", NewMySQLDialect().Name())
}

func TestPostgresQuoteIdentifier(t *testing.T) {
	d := NewPostgresDialect()

	assert.Equal(t, "users", d.QuoteIdentifier("users"))
	assert.Equal(t, "order_items2", d.QuoteIdentifier("order_items2"))
	assert.Equal(t, `"Users"`, d.QuoteIdentifier("Users"))
	assert.Equal(t, `"2fast"`, d.QuoteIdentifier("2fast"))
	assert.Equal(t, `"weird ""name"""`, d.QuoteIdentifier(`weird "name"`))
	assert.Equal(t, `""`, d.QuoteIdentifier(""))
}

func TestPostgresPlaceholder(t *testing.T) {
	d := NewPostgresDialect()
	assert.Equal(t, "$1", d.Placeholder(1))
	assert.Equal(t, "$12", d.Placeholder(12))
}

func TestMySQLPlaceholder(t *testing.T) {
	d := NewMySQLDialect()
	assert.Equal(t, "?", d.Placeholder(1))
	assert.Equal(t, "?", d.Placeholder(7))
}

func TestMySQLQuoteIdentifier(t *testing.T) {
	d := NewMySQLDialect()
	assert.Equal(t, "users", d.QuoteIdentifier("users"))
	assert.Equal(t, "`Users`", d.QuoteIdentifier("Users"))
}

func TestRenderValue(t *testing.T) {
	d := NewPostgresDialect()

	tests := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{"Alice", "'Alice'"},
		{"O'Brien", "'O''Brien'"},
		{true, "TRUE"},
		{false, "FALSE"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint8(255), "255"},
		{3.5, "3.5"},
		{time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC), "'2021-01-02 03:04:05.000000'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.RenderValue(tt.in), "value %v", tt.in)
	}
}

func TestRenderValueBytes(t *testing.T) {
	assert.Equal(t, `E'\\x01ff'`, NewPostgresDialect().RenderValue([]byte{0x01, 0xff}))
	assert.Equal(t, "x'01ff'", NewMySQLDialect().RenderValue([]byte{0x01, 0xff}))
}
