package shared

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, KindDbError.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusConflict, KindConflict.Status())
	assert.Equal(t, http.StatusServiceUnavailable, KindStoreUnavailable.Status())
	assert.Equal(t, http.StatusBadRequest, KindInvalidInput.Status())
	assert.Equal(t, http.StatusInternalServerError, Kind("Unknown").Status())
}

func TestAppError_MessageNeverCarriesCause(t *testing.T) {
	appErr := Classify(errors.New("pq: password authentication failed for user \"todo\""), "Error loading todo lists")

	assert.Equal(t, KindDbError, appErr.Kind)
	assert.Equal(t, "Error loading todo lists", appErr.Message)
	assert.NotContains(t, appErr.Message, "password")
	assert.Contains(t, appErr.Cause, "password")
	assert.Contains(t, appErr.Error(), "password")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"nil-safe wrapped deadline", fmt.Errorf("acquire: %w", context.DeadlineExceeded), KindStoreUnavailable},
		{"canceled", context.Canceled, KindStoreUnavailable},
		{"conn done", sql.ErrConnDone, KindStoreUnavailable},
		{"no rows after insert", sql.ErrNoRows, KindDbError},
		{"insert no result", ErrInsertNoResult, KindDbError},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, KindNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, KindConflict},
		{"pg serialization", &pgconn.PgError{Code: "40001"}, KindConflict},
		{"pg not null", &pgconn.PgError{Code: "23502"}, KindInvalidInput},
		{"pg too many connections", &pgconn.PgError{Code: "53300"}, KindStoreUnavailable},
		{"pg syntax error", &pgconn.PgError{Code: "42601"}, KindDbError},
		{"generic", errors.New("boom"), KindDbError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			appErr := Classify(tc.err, "Operation failed")
			require.NotNil(t, appErr)
			assert.Equal(t, tc.kind, appErr.Kind)
			assert.NotEmpty(t, appErr.Message)
		})
	}
}

func TestClassify_InsertNoResultKeepsMessage(t *testing.T) {
	appErr := Classify(sql.ErrNoRows, "Error creating TODO list")
	assert.Equal(t, KindDbError, appErr.Kind)
	assert.Equal(t, "Error creating TODO list", appErr.Message)
	assert.Equal(t, ErrInsertNoResult.Error(), appErr.Cause)
}

func TestClassify_PassesAppErrorThrough(t *testing.T) {
	original := NewAppError(KindInvalidInput, "Title must not be empty")
	wrapped := fmt.Errorf("service: %w", original)

	assert.Same(t, original, Classify(wrapped, "ignored"))
	assert.True(t, IsKind(wrapped, KindInvalidInput))
	assert.False(t, IsKind(wrapped, KindNotFound))
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil, "unused"))
}

func TestAsAppError_HidesForeignErrors(t *testing.T) {
	appErr := AsAppError(errors.New("dial tcp 10.0.0.1:5432: connection refused"))
	assert.Equal(t, KindDbError, appErr.Kind)
	assert.Equal(t, "Internal server error", appErr.Message)
}

func TestClassify_SqliteConstraints(t *testing.T) {
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE parent (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL);
		CREATE TABLE child (id INTEGER PRIMARY KEY AUTOINCREMENT, parent_id INTEGER NOT NULL REFERENCES parent(id));
	`)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO child (parent_id) VALUES (42)")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, Classify(err, "Error creating TODO item").Kind)

	_, err = db.Exec("INSERT INTO parent (title) VALUES (NULL)")
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, Classify(err, "Error creating TODO list").Kind)

	_, err = db.Exec("INSERT INTO parent (id, title) VALUES (1, 'a')")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO parent (id, title) VALUES (1, 'b')")
	require.Error(t, err)
	assert.Equal(t, KindConflict, Classify(err, "Error creating TODO list").Kind)
}
