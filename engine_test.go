package querybuilder

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS users (id INTEGER PRIMARY KEY, name TEXT, karma INTEGER)`)
	require.NoError(t, err)
	return db
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(NewSelect("users").Fields("COUNT(*)").Build()).Scan(&n))
	return n
}

func TestStatementsRunOnSQLite(t *testing.T) {
	db := setupSQLite(t)

	for _, u := range [][2]string{{"'amirreza'", "10"}, {"'milad'", "20"}} {
		_, err := db.Exec(NewInsert("users").Set("name", u[0]).Set("karma", u[1]).Build())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, countUsers(t, db))

	t.Run("select with every clause", func(t *testing.T) {
		q := NewSelect("users").
			Alias("users", "u").
			Fields("u.id", "u.name").
			Filter("u.karma >= 10").
			Filter("u.name IS NOT NULL").
			OrderBy("u.id", Desc).
			Limit(1).
			Offset(1).
			Build()
		var (
			id   int64
			name string
		)
		require.NoError(t, db.QueryRow(q).Scan(&id, &name))
		assert.Equal(t, int64(1), id)
		assert.Equal(t, "amirreza", name)
	})

	t.Run("update single column", func(t *testing.T) {
		_, err := db.Exec(NewUpdate("users").Set("karma", "0").Filter("name = 'amirreza'").Build())
		require.NoError(t, err)

		var karma int
		require.NoError(t, db.QueryRow(NewSelect("users").Fields("karma").Filter("name = 'amirreza'").Build()).Scan(&karma))
		assert.Equal(t, 0, karma)
	})

	t.Run("delete with conditions", func(t *testing.T) {
		_, err := db.Exec(NewDelete("users").Filter("karma = 0").Filter("name = 'amirreza'").Build())
		require.NoError(t, err)
		assert.Equal(t, 1, countUsers(t, db))
	})

	t.Run("delete everything", func(t *testing.T) {
		_, err := db.Exec(NewDelete("users").Build())
		require.NoError(t, err)
		assert.Equal(t, 0, countUsers(t, db))
	})
}
