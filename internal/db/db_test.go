package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesTablesAndColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	cols, err := tableColumns(d, "submissions")
	require.NoError(t, err)
	for _, want := range []string{
		"id", "fullName", "phone", "email", "description",
		"birthCertificate", "resultSlip", "timestamp",
		"indexNumber", "kcseYear", "birthCertNumber", "primaryIndexNumber",
	} {
		assert.True(t, cols[want], "missing column %s", want)
	}

	blocked, err := tableColumns(d, "blocked_users")
	require.NoError(t, err)
	assert.True(t, blocked["email"])
}

func TestOpen_Reopen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	d, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	// A third migration pass against the open handle must also be a no-op.
	require.NoError(t, EnsureColumns(d))
}

func TestEnsureColumns_UpgradesLegacySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	// Seed a pre-KUCCPS database: no optional columns, one existing row.
	legacy, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		CREATE TABLE submissions (
			id INTEGER PRIMARY KEY,
			fullName TEXT, phone TEXT, email TEXT, description TEXT,
			birthCertificate TEXT, resultSlip TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	require.NoError(t, err)
	_, err = legacy.Exec(`
		INSERT INTO submissions (fullName, phone, email, description)
		VALUES ('Jane Doe', '0700000000', 'jane@x.com', 'test')`)
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	d, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	// The old row survives with NULL in the new columns.
	var email string
	var indexNumber sql.NullString
	var kcseYear sql.NullInt64
	err = d.QueryRow(`SELECT email, indexNumber, kcseYear FROM submissions`).
		Scan(&email, &indexNumber, &kcseYear)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", email)
	assert.False(t, indexNumber.Valid)
	assert.False(t, kcseYear.Valid)
}
