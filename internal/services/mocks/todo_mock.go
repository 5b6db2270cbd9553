// filepath: internal/services/mocks/todo_mock.go
package mocks

import (
	"context"

	"todohub/internal/models"
	"todohub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockTodoService is a mock implementation of services.TodoService
type MockTodoService struct {
	mock.Mock
}

var _ services.TodoService = (*MockTodoService)(nil)

func (m *MockTodoService) ListTodoLists(ctx context.Context) ([]models.TodoList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TodoList), args.Error(1)
}

func (m *MockTodoService) CreateTodoList(ctx context.Context, title string) (*models.TodoList, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TodoList), args.Error(1)
}

func (m *MockTodoService) ListItems(ctx context.Context, listID int64) ([]models.TodoItem, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TodoItem), args.Error(1)
}

func (m *MockTodoService) CreateTodoItem(ctx context.Context, title string, listID int64) (*models.TodoItem, error) {
	args := m.Called(ctx, title, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TodoItem), args.Error(1)
}

func (m *MockTodoService) CheckItem(ctx context.Context, listID, itemID int64) (bool, error) {
	args := m.Called(ctx, listID, itemID)
	return args.Bool(0), args.Error(1)
}
