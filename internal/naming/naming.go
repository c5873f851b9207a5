// Package naming derives SQL names from Go identifiers.
package naming

import (
	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

// Column turns a Go field name into a snake_case column name, FirstName -> first_name.
func Column(field string) string {
	return strcase.ToSnake(field)
}

// Table turns a Go type name into a plural snake_case table name, BlogPost -> blog_posts.
func Table(typeName string) string {
	return pluralize.NewClient().Plural(strcase.ToSnake(typeName))
}

// ForeignKey names the column other tables use to point at table, users -> user_id.
func ForeignKey(table string) string {
	return pluralize.NewClient().Singular(table) + "_id"
}
