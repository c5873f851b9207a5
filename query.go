// Package querybuilder assembles SELECT, INSERT, UPDATE and DELETE statements
// from chained method calls.
//
// Every table, field, value and expression is opaque text copied verbatim into
// the output: nothing is quoted, escaped or bound. A statement value is not
// safe for concurrent mutation; callers sharing one between goroutines must
// serialize access themselves.
package querybuilder

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyTable = errors.New("table name cannot be empty")
	ErrNoValues   = errors.New("no values to set")
)

// Statement is implemented by Select, Insert, Update and Delete.
type Statement interface {
	// Build returns the SQL text. It never fails.
	Build() string
	// SQL returns the same text as Build, or an error when the statement
	// could not mean anything to a database.
	SQL() (string, error)
}

var (
	_ Statement = (*Select)(nil)
	_ Statement = (*Insert)(nil)
	_ Statement = (*Update)(nil)
	_ Statement = (*Delete)(nil)
)

// SelectFrom is shorthand for NewSelect(table).
func SelectFrom(table string) *Select {
	return NewSelect(table)
}

// InsertInto is shorthand for NewInsert(table).
func InsertInto(table string) *Insert {
	return NewInsert(table)
}

// UpdateTable is shorthand for NewUpdate(table).
func UpdateTable(table string) *Update {
	return NewUpdate(table)
}

// DeleteFrom is shorthand for NewDelete(table).
func DeleteFrom(table string) *Delete {
	return NewDelete(table)
}

func checkTable(kind, table string) error {
	if table == "" {
		return errors.Wrap(ErrEmptyTable, kind)
	}
	return nil
}

func checkValues(kind, table string, values map[string]string) error {
	if len(values) == 0 {
		return errors.Wrapf(ErrNoValues, "%s %s", kind, table)
	}
	return nil
}

func (c config) reject(kind string, err error) (string, error) {
	c.logger.Warnf("rejected %s statement: %v", kind, err)
	return "", err
}
