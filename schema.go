package querybuilder

import (
	"reflect"

	"github.com/golobby/querybuilder/internal/naming"
)

// TableOf infers a table name from the struct type of v, User -> users. It
// returns "" for unnamed types and for anything that is not a struct.
func TableOf(v any) string {
	t := indirectType(reflect.TypeOf(v))
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" {
		return ""
	}
	return naming.Table(t.Name())
}

// ForeignKeyOf names the column referencing table, posts -> post_id.
func ForeignKeyOf(table string) string {
	return naming.ForeignKey(table)
}
