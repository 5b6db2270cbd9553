// filepath: internal/services/todo_service.go
package services

import (
	"context"
	"strings"

	"todohub/internal/models"
	"todohub/internal/repository"

	"github.com/sirupsen/logrus"
)

// --- Compile-time check to ensure interface is implemented ---
var _ TodoService = (*todoService)(nil)

// todoService runs each request as acquire, one store operation, release.
type todoService struct {
	Pool   *repository.Pool
	Repo   *repository.Repository
	Logger *logrus.Logger
	strict bool
}

// NewTodoService creates a new TodoService. With strict set, blank titles are
// rejected before a connection is borrowed.
func NewTodoService(pool *repository.Pool, repo *repository.Repository, logger *logrus.Logger, strict bool) *todoService {
	return &todoService{
		Pool:   pool,
		Repo:   repo,
		Logger: logger,
		strict: strict,
	}
}

// ResolveListID picks the list an item is created in from the path id and the
// optional body id. In strict mode a differing body id is rejected; otherwise
// a non-zero body id takes precedence.
func ResolveListID(pathID, bodyID int64, strict bool) (int64, error) {
	if bodyID == 0 || bodyID == pathID {
		return pathID, nil
	}
	if strict {
		return 0, ErrListIDMismatch
	}
	return bodyID, nil
}

func (s *todoService) validateTitle(title string) error {
	if s.strict && strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func (s *todoService) ListTodoLists(ctx context.Context) ([]models.TodoList, error) {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return s.Repo.ListTodoLists(ctx, conn)
}

func (s *todoService) CreateTodoList(ctx context.Context, title string) (*models.TodoList, error) {
	if err := s.validateTitle(title); err != nil {
		return nil, err
	}

	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	list, err := s.Repo.CreateTodoList(ctx, conn, title)
	if err != nil {
		return nil, err
	}
	s.Logger.WithField("list_id", list.ID).Debug("Created todo list")
	return list, nil
}

func (s *todoService) ListItems(ctx context.Context, listID int64) ([]models.TodoItem, error) {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return s.Repo.ListItems(ctx, conn, listID)
}

func (s *todoService) CreateTodoItem(ctx context.Context, title string, listID int64) (*models.TodoItem, error) {
	if err := s.validateTitle(title); err != nil {
		return nil, err
	}

	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	item, err := s.Repo.CreateTodoItem(ctx, conn, title, listID)
	if err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"list_id": listID, "item_id": item.ID}).Debug("Created todo item")
	return item, nil
}

func (s *todoService) CheckItem(ctx context.Context, listID, itemID int64) (bool, error) {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	return s.Repo.CheckItem(ctx, conn, listID, itemID)
}
