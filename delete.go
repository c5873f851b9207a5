package querybuilder

import "strings"

type Delete struct {
	config
	table      string
	conditions []string
}

func NewDelete(table string, opts ...Option) *Delete {
	return &Delete{
		config: newConfig(opts),
		table:  table,
	}
}

// Filter adds a WHERE condition, ANDed with the previous ones.
func (d *Delete) Filter(expr string) *Delete {
	d.conditions = append(d.conditions, expr)
	return d
}

func (d *Delete) Build() string {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(d.table)
	if len(d.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(join(d.conditions, " AND "))
	}
	sb.WriteString(";")

	q := sb.String()
	d.logger.Debugf("built delete: %s", q)
	return q
}

func (d *Delete) SQL() (string, error) {
	if err := checkTable("delete", d.table); err != nil {
		return d.reject("delete", err)
	}
	return d.Build(), nil
}
