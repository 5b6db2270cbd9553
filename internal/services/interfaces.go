// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"todohub/internal/models"
)

// Auditor defines the interface for recording state-changing events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "todo_list.create", "todo_item.check")
	// actor: who did it (client address)
	// resource: what was affected (e.g., "todo_list:3", "todo_item:3/7")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// TodoService defines the interface for the todo list and item operations.
// Every method borrows one pooled connection for a single store round trip.
type TodoService interface {
	ListTodoLists(ctx context.Context) ([]models.TodoList, error)
	CreateTodoList(ctx context.Context, title string) (*models.TodoList, error)
	ListItems(ctx context.Context, listID int64) ([]models.TodoItem, error)
	CreateTodoItem(ctx context.Context, title string, listID int64) (*models.TodoItem, error)
	CheckItem(ctx context.Context, listID, itemID int64) (bool, error)
}

// HealthService defines the interface for store health reporting and the
// background probe lifecycle.
type HealthService interface {
	Start()
	Stop()
	Check(ctx context.Context) models.HealthStatus
}
