package querybuilder

import (
	"strconv"
	"strings"
)

// Select accumulates a SELECT statement.
//
// fields, conditions and order stay nil until first configured; a nil fields
// projects *, while a non-nil empty one projects nothing at all.
type Select struct {
	config
	table      string
	aliases    map[string]string
	fields     []string
	order      []orderClause
	conditions []string
	limit      uint
	offset     uint
}

// NewSelect starts a SELECT on table.
func NewSelect(table string, opts ...Option) *Select {
	return &Select{
		config: newConfig(opts),
		table:  table,
	}
}

// NewSelectFor starts a SELECT on the table inferred from v, projecting the
// columns inferred from v's fields. See TableOf and ColumnsOf. When no
// columns can be inferred the projection stays *; when no table can be
// inferred SQL reports ErrEmptyTable.
func NewSelectFor(v any, opts ...Option) *Select {
	s := NewSelect(TableOf(v), opts...)
	if cols := ColumnsOf(v); cols != nil {
		s.Fields(cols...)
	}
	return s
}

// Alias records alias for table. Only the alias of the select's own table is
// ever emitted.
func (s *Select) Alias(table, alias string) *Select {
	if s.aliases == nil {
		s.aliases = map[string]string{}
	}
	s.aliases[table] = alias
	return s
}

// Fields appends columns to the projection. Calling it with no columns still
// switches the projection away from *.
func (s *Select) Fields(fields ...string) *Select {
	if s.fields == nil {
		s.fields = make([]string, 0, len(fields))
	}
	s.fields = append(s.fields, fields...)
	return s
}

// Filter adds a WHERE condition, ANDed with the previous ones.
func (s *Select) Filter(expr string) *Select {
	s.conditions = append(s.conditions, expr)
	return s
}

func (s *Select) OrderBy(expr string, dir Order) *Select {
	s.order = append(s.order, orderClause{expr: expr, dir: dir})
	return s
}

// InnerJoin is accepted but has no effect on the built statement.
func (s *Select) InnerJoin(table, onLeft, onRight string) *Select {
	return s
}

// LeftJoin is accepted but has no effect on the built statement.
func (s *Select) LeftJoin(table, onLeft, onRight string) *Select {
	return s
}

// Limit caps the number of rows; 0 removes the LIMIT clause.
func (s *Select) Limit(n uint) *Select {
	s.limit = n
	return s
}

// Offset skips n rows. It is only emitted alongside a non-zero Limit.
func (s *Select) Offset(n uint) *Select {
	s.offset = n
	return s
}

func (s *Select) Build() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	if s.fields != nil {
		sb.WriteString(join(s.fields, ", "))
	} else {
		sb.WriteString("*")
	}

	sb.WriteString(" FROM ")
	sb.WriteString(s.table)

	if alias, exists := s.aliases[s.table]; exists {
		sb.WriteString(" AS ")
		sb.WriteString(alias)
	}

	if len(s.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(join(s.conditions, " AND "))
	}

	// successive keys are written back to back, "a ASCb DESC"
	if len(s.order) > 0 {
		sb.WriteString(" ORDER BY ")
		for _, o := range s.order {
			sb.WriteString(o.String())
		}
	}

	if s.limit != 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatUint(uint64(s.limit), 10))
		if s.offset != 0 {
			sb.WriteString(", ")
			sb.WriteString(strconv.FormatUint(uint64(s.offset), 10))
		}
	}

	sb.WriteString(";")
	q := sb.String()
	s.logger.Debugf("built select: %s", q)
	return q
}

func (s *Select) SQL() (string, error) {
	if err := checkTable("select", s.table); err != nil {
		return s.reject("select", err)
	}
	return s.Build(), nil
}
