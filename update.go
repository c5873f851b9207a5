package querybuilder

import (
	"strings"

	"github.com/samber/lo"
)

// Update accumulates an UPDATE. Assignments are joined with " AND " rather
// than commas, so only single column updates mean what they say; existing
// callers depend on that text.
type Update struct {
	config
	table      string
	values     map[string]string
	conditions []string
}

func NewUpdate(table string, opts ...Option) *Update {
	return &Update{
		config: newConfig(opts),
		table:  table,
		values: map[string]string{},
	}
}

// Set assigns value to field, replacing any earlier value for field.
func (u *Update) Set(field, value string) *Update {
	u.values[field] = value
	return u
}

// Filter adds a WHERE condition, ANDed with the previous ones.
func (u *Update) Filter(expr string) *Update {
	u.conditions = append(u.conditions, expr)
	return u
}

func (u *Update) Build() string {
	assignments := lo.MapToSlice(u.values, func(field, value string) string {
		return field + " = " + value
	})

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(u.table)
	sb.WriteString(" SET ")
	sb.WriteString(join(assignments, " AND "))

	if len(u.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(join(u.conditions, " AND "))
	}

	sb.WriteString(";")
	q := sb.String()
	u.logger.Debugf("built update: %s", q)
	return q
}

func (u *Update) SQL() (string, error) {
	if err := checkTable("update", u.table); err != nil {
		return u.reject("update", err)
	}
	if err := checkValues("update", u.table, u.values); err != nil {
		return u.reject("update", err)
	}
	return u.Build(), nil
}
