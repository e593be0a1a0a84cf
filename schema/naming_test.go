package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNamingTableName(t *testing.T) {
	n := DefaultNaming()

	tests := []struct {
		in   string
		want string
	}{
		{"User", "users"},
		{"OrderItem", "order_items"},
		{"Person", "people"},
		{"HTTPServer", "http_servers"},
		{"APIKey", "api_keys"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.TableName(tt.in), "type %s", tt.in)
	}
}

func TestSingularNamingTableName(t *testing.T) {
	n := SingularNaming()
	assert.Equal(t, "user_account", n.TableName("UserAccount"))
}

func TestColumnName(t *testing.T) {
	n := DefaultNaming()

	tests := []struct {
		in   string
		want string
	}{
		{"FirstName", "first_name"},
		{"OrderID", "order_id"},
		{"ID", "id"},
		{"already_snake", "already_snake"},
		{"Field1Name", "field1_name"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.ColumnName(tt.in), "field %s", tt.in)
	}
}
