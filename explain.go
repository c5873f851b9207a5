package querybuilder

import (
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/table"
	"github.com/samber/lo"
)

// Explain renders the clauses a statement has accumulated as a text table,
// one row per clause part, for debugging. It reflects configured state, so
// aliases of other tables and an offset without a limit show up here even
// though Build drops them.
func (s *Select) Explain() string {
	w := newClauseWriter("SELECT", s.table)
	if s.fields == nil {
		w.AppendRow(table.Row{"FIELDS", "*"})
	} else {
		w.AppendRow(table.Row{"FIELDS", join(s.fields, ", ")})
	}
	tables := lo.Keys(s.aliases)
	sort.Strings(tables)
	for _, t := range tables {
		w.AppendRow(table.Row{"ALIAS", t + " AS " + s.aliases[t]})
	}
	appendConditions(w, s.conditions)
	for _, o := range s.order {
		w.AppendRow(table.Row{"ORDER BY", o.String()})
	}
	if s.limit != 0 {
		w.AppendRow(table.Row{"LIMIT", strconv.FormatUint(uint64(s.limit), 10)})
	}
	if s.offset != 0 {
		w.AppendRow(table.Row{"OFFSET", strconv.FormatUint(uint64(s.offset), 10)})
	}
	return w.Render()
}

func (i *Insert) Explain() string {
	w := newClauseWriter("INSERT", i.table)
	appendValues(w, i.values)
	return w.Render()
}

func (u *Update) Explain() string {
	w := newClauseWriter("UPDATE", u.table)
	appendValues(w, u.values)
	appendConditions(w, u.conditions)
	return w.Render()
}

func (d *Delete) Explain() string {
	w := newClauseWriter("DELETE", d.table)
	appendConditions(w, d.conditions)
	return w.Render()
}

func newClauseWriter(kind, tableName string) table.Writer {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Clause", "Value"})
	w.AppendRow(table.Row{kind, tableName})
	return w
}

func appendConditions(w table.Writer, conditions []string) {
	for _, c := range conditions {
		w.AppendRow(table.Row{"WHERE", c})
	}
}

// values are listed sorted by field so the rendering is stable.
func appendValues(w table.Writer, values map[string]string) {
	fields := lo.Keys(values)
	sort.Strings(fields)
	for _, f := range fields {
		w.AppendRow(table.Row{"SET", f + " = " + values[f]})
	}
}
