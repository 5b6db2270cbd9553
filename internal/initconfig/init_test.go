// filepath: internal/initconfig/init_test.go
package initconfig

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"todohub/internal/logging"
	"todohub/internal/models"
	"todohub/internal/services/mocks"
	"todohub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const seedFile = `
[[list]]
title = "Groceries"

  [[list.item]]
  title = "Milk"
  checked = true

  [[list.item]]
  title = "Eggs"

[[list]]
title = "Chores"
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	seed, err := Load(writeSeed(t, seedFile))
	require.NoError(t, err)
	require.Len(t, seed.Lists, 2)
	assert.Equal(t, "Groceries", seed.Lists[0].Title)
	require.Len(t, seed.Lists[0].Items, 2)
	assert.True(t, seed.Lists[0].Items[0].Checked)
	assert.False(t, seed.Lists[0].Items[1].Checked)
	assert.Empty(t, seed.Lists[1].Items)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeSeed(t, "[[list]\ntitle ="))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	logger := logging.NewLoggerWithOutput("error", io.Discard)
	ctx := context.Background()

	t.Run("Creates Missing Lists", func(t *testing.T) {
		todo := new(mocks.MockTodoService)
		todo.On("ListTodoLists", mock.Anything).Return([]models.TodoList{{ID: 1, Title: "Chores"}}, nil).Once()
		todo.On("CreateTodoList", mock.Anything, "Groceries").Return(&models.TodoList{ID: 2, Title: "Groceries"}, nil).Once()
		todo.On("CreateTodoItem", mock.Anything, "Milk", int64(2)).Return(&models.TodoItem{ID: 10, Title: "Milk", ListID: 2}, nil).Once()
		todo.On("CreateTodoItem", mock.Anything, "Eggs", int64(2)).Return(&models.TodoItem{ID: 11, Title: "Eggs", ListID: 2}, nil).Once()
		todo.On("CheckItem", mock.Anything, int64(2), int64(10)).Return(true, nil).Once()

		report, err := Run(ctx, todo, writeSeed(t, seedFile), logger)
		require.NoError(t, err)

		assert.Equal(t, &Report{ListsCreated: 1, ListsSkipped: 1, ItemsCreated: 2, ItemsChecked: 1}, report)
		todo.AssertExpectations(t)
	})

	t.Run("Counts Failures And Continues", func(t *testing.T) {
		todo := new(mocks.MockTodoService)
		todo.On("ListTodoLists", mock.Anything).Return([]models.TodoList{}, nil).Once()
		todo.On("CreateTodoList", mock.Anything, "Groceries").Return(&models.TodoList{ID: 1, Title: "Groceries"}, nil).Once()
		todo.On("CreateTodoItem", mock.Anything, "Milk", int64(1)).
			Return(nil, shared.NewAppError(shared.KindInvalidInput, "Title must not be empty")).Once()
		todo.On("CreateTodoItem", mock.Anything, "Eggs", int64(1)).Return(&models.TodoItem{ID: 2, Title: "Eggs", ListID: 1}, nil).Once()
		todo.On("CreateTodoList", mock.Anything, "Chores").Return(&models.TodoList{ID: 2, Title: "Chores"}, nil).Once()

		report, err := Run(ctx, todo, writeSeed(t, seedFile), logger)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Failures)
		assert.Equal(t, 2, report.ListsCreated)
		assert.Equal(t, 1, report.ItemsCreated)
		todo.AssertNotCalled(t, "CheckItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store Unavailable Aborts", func(t *testing.T) {
		todo := new(mocks.MockTodoService)
		todo.On("ListTodoLists", mock.Anything).
			Return(nil, shared.NewAppError(shared.KindStoreUnavailable, "Store unavailable")).Once()

		_, err := Run(ctx, todo, writeSeed(t, seedFile), logger)
		require.Error(t, err)
		assert.True(t, shared.IsKind(err, shared.KindStoreUnavailable))
	})
}
