package querybuilder

import (
	"reflect"

	"github.com/golobby/querybuilder/internal/naming"
)

// ColumnsOf lists the column names of struct v in field order: the `db` tag
// when present, otherwise the snake_case field name. Fields tagged `db:"-"`
// and unexported fields are skipped, embedded structs are flattened.
func ColumnsOf(v any) []string {
	t := indirectType(reflect.TypeOf(v))
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return columnsOf(t, map[reflect.Type]bool{})
}

// expanding holds the struct types on the current embedding path; a type
// embedding itself is flattened once.
func columnsOf(t reflect.Type, expanding map[reflect.Type]bool) []string {
	expanding[t] = true
	defer delete(expanding, t)

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		if ft.Anonymous {
			if et := indirectType(ft.Type); et.Kind() == reflect.Struct {
				if !expanding[et] {
					cols = append(cols, columnsOf(et, expanding)...)
				}
				continue
			}
		}
		if !ft.IsExported() {
			continue
		}
		tag := ft.Tag.Get("db")
		if tag == "-" {
			continue
		}
		if tag != "" {
			cols = append(cols, tag)
			continue
		}
		cols = append(cols, naming.Column(ft.Name))
	}
	return cols
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
