package querybuilder

import (
	"strings"

	"github.com/samber/lo"
)

// Insert accumulates a single row INSERT. Column order in the output follows
// map iteration and so varies between builds; each column stays paired with
// its own value.
type Insert struct {
	config
	table  string
	values map[string]string
}

func NewInsert(table string, opts ...Option) *Insert {
	return &Insert{
		config: newConfig(opts),
		table:  table,
		values: map[string]string{},
	}
}

// Set assigns value to field, replacing any earlier value for field.
func (i *Insert) Set(field, value string) *Insert {
	i.values[field] = value
	return i
}

func (i *Insert) Build() string {
	entries := lo.Entries(i.values)
	cols := lo.Map(entries, func(e lo.Entry[string, string], _ int) string { return e.Key })
	vals := lo.Map(entries, func(e lo.Entry[string, string], _ int) string { return e.Value })

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(i.table)
	sb.WriteString(" (")
	sb.WriteString(join(cols, ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(join(vals, ", "))
	sb.WriteString(");")

	q := sb.String()
	i.logger.Debugf("built insert: %s", q)
	return q
}

func (i *Insert) SQL() (string, error) {
	if err := checkTable("insert", i.table); err != nil {
		return i.reject("insert", err)
	}
	if err := checkValues("insert into", i.table, i.values); err != nil {
		return i.reject("insert", err)
	}
	return i.Build(), nil
}
