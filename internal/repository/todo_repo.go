// filepath: internal/repository/todo_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"

	"todohub/internal/models"
	"todohub/internal/shared"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const (
	todoListTable = "todo_list"
	todoItemTable = "todo_item"
)

// ListTodoLists returns every todo list, newest first.
func (r *Repository) ListTodoLists(ctx context.Context, conn Conn) ([]models.TodoList, error) {
	const op = "list_todo_lists"
	ctx, finish := r.track(ctx, op)

	query, args, err := r.Builder.
		Select("id", "title").
		From(todoListTable).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, finish(r.fail(op, "Error loading todo lists", err))
	}

	lists := make([]models.TodoList, 0)
	if err := sqlx.SelectContext(ctx, conn, &lists, query, args...); err != nil {
		return nil, finish(r.fail(op, "Error loading todo lists", err))
	}
	return lists, finish(nil)
}

// ListItems returns the items of one list in insertion order.
// An unknown list yields an empty slice.
func (r *Repository) ListItems(ctx context.Context, conn Conn, listID int64) ([]models.TodoItem, error) {
	const op = "list_items"
	ctx, finish := r.track(ctx, op)

	query, args, err := r.Builder.
		Select("id", "title", "checked", "list_id").
		From(todoItemTable).
		Where(squirrel.Eq{"list_id": listID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, finish(r.fail(op, "Error loading todo items", err))
	}

	items := make([]models.TodoItem, 0)
	if err := sqlx.SelectContext(ctx, conn, &items, query, args...); err != nil {
		return nil, finish(r.fail(op, "Error loading todo items", err))
	}
	return items, finish(nil)
}

// CreateTodoList inserts a list and returns it with its generated id.
func (r *Repository) CreateTodoList(ctx context.Context, conn Conn, title string) (*models.TodoList, error) {
	const op = "create_todo_list"
	const message = "Error creating TODO list"
	ctx, finish := r.track(ctx, op)

	query, args, err := r.Builder.
		Insert(todoListTable).
		Columns("title").
		Values(title).
		Suffix("RETURNING id, title").
		ToSql()
	if err != nil {
		return nil, finish(r.fail(op, message, err))
	}

	var list models.TodoList
	if err := sqlx.GetContext(ctx, conn, &list, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = shared.ErrInsertNoResult
		}
		return nil, finish(r.fail(op, message, err))
	}
	return &list, finish(nil)
}

// CreateTodoItem inserts an unchecked item into an existing list.
// A missing list surfaces as a NotFound error from the foreign key.
func (r *Repository) CreateTodoItem(ctx context.Context, conn Conn, title string, listID int64) (*models.TodoItem, error) {
	const op = "create_todo_item"
	const message = "Error creating TODO item"
	ctx, finish := r.track(ctx, op)

	query, args, err := r.Builder.
		Insert(todoItemTable).
		Columns("title", "checked", "list_id").
		Values(title, false, listID).
		Suffix("RETURNING id, title, checked, list_id").
		ToSql()
	if err != nil {
		return nil, finish(r.fail(op, message, err))
	}

	var item models.TodoItem
	if err := sqlx.GetContext(ctx, conn, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = shared.ErrInsertNoResult
		}
		return nil, finish(r.fail(op, message, err))
	}
	return &item, finish(nil)
}

// CheckItem marks an unchecked item as checked. It reports true only when this
// call flipped the flag; an already checked or unknown item yields false.
func (r *Repository) CheckItem(ctx context.Context, conn Conn, listID, itemID int64) (bool, error) {
	const op = "check_item"
	const message = "Error checking todo item"
	ctx, finish := r.track(ctx, op)

	query, args, err := r.Builder.
		Update(todoItemTable).
		Set("checked", true).
		Where(squirrel.Eq{"list_id": listID}).
		Where(squirrel.Eq{"id": itemID}).
		Where(squirrel.Eq{"checked": false}).
		ToSql()
	if err != nil {
		return false, finish(r.fail(op, message, err))
	}

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, finish(r.fail(op, message, err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, finish(r.fail(op, message, err))
	}
	return affected == 1, finish(nil)
}
