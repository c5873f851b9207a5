package querybuilder

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	t.Run("update with conditions", func(t *testing.T) {
		u := NewUpdate("users").Set("karma", "0").Filter("name = $1").Filter("last_login < $2")
		assert.Equal(t, "UPDATE users SET karma = 0 WHERE name = $1 AND last_login < $2;", u.Build())
	})

	// Known incompatibility with SQL: assignments are joined with AND.
	t.Run("multiple assignments are joined with AND", func(t *testing.T) {
		q := NewUpdate("users").Set("karma", "0").Set("last_login", "1970-01-01").Build()
		assert.Contains(t, []string{
			"UPDATE users SET karma = 0 AND last_login = 1970-01-01;",
			"UPDATE users SET last_login = 1970-01-01 AND karma = 0;",
		}, q)
	})

	t.Run("last set wins", func(t *testing.T) {
		q := NewUpdate("users").Set("karma", "1").Set("karma", "2").Build()
		assert.Equal(t, "UPDATE users SET karma = 2;", q)
	})

	t.Run("no values builds an empty SET", func(t *testing.T) {
		assert.Equal(t, "UPDATE users SET ;", NewUpdate("users").Build())
		assert.Equal(t, "UPDATE users SET  WHERE id = 1;", NewUpdate("users").Filter("id = 1").Build())
	})

	t.Run("constructor shorthand", func(t *testing.T) {
		assert.Equal(t, "UPDATE users SET karma = 0;", UpdateTable("users").Set("karma", "0").Build())
	})

	t.Run("SQL rejects no values", func(t *testing.T) {
		_, err := NewUpdate("users").Filter("id = 1").SQL()
		assert.Equal(t, ErrNoValues, errors.Cause(err))
	})

	t.Run("SQL", func(t *testing.T) {
		q, err := NewUpdate("users").Set("karma", "0").SQL()
		require.NoError(t, err)
		assert.Equal(t, "UPDATE users SET karma = 0;", q)
	})

	t.Run("matches squirrel for one assignment", func(t *testing.T) {
		want, _, err := sq.Update("users").
			Set("karma", sq.Expr("0")).
			Where("name = $1").
			Where("last_login < $2").
			ToSql()
		require.NoError(t, err)

		got := NewUpdate("users").Set("karma", "0").Filter("name = $1").Filter("last_login < $2").Build()
		assert.Equal(t, want+";", got)
	})
}
