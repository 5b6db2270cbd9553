// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	Driver      string    `json:"driver"`
}

// Status is the body returned by the root liveness endpoint.
type Status struct {
	Status string `json:"status"`
}

// TodoList is a top-level named collection of items.
type TodoList struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

// TodoItem is a checkable task belonging to exactly one TodoList.
// Checked only ever moves from false to true.
type TodoItem struct {
	ID      int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Checked bool   `json:"checked" db:"checked"`
	ListID  int64  `json:"list_id" db:"list_id"`
}

// CreateTodoListPayload is the request body for POST /todos.
type CreateTodoListPayload struct {
	Title string `json:"title" example:"Groceries"`
}

// CreateTodoItemPayload is the request body for POST /todos/{list_id}/items.
// ListID may be omitted, in which case the list id from the path is used.
type CreateTodoItemPayload struct {
	Title  string `json:"title" example:"Milk"`
	ListID int64  `json:"list_id,omitempty" example:"1"`
}

// ResultResponse reports the outcome of a conditional update.
type ResultResponse struct {
	Success bool `json:"success"`
}

// PoolStats contains connection pool statistics.
type PoolStats struct {
	MaxOpenConnections int           `json:"max_open_connections"`
	OpenConnections    int           `json:"open_connections"`
	InUse              int           `json:"in_use"`
	Idle               int           `json:"idle"`
	WaitCount          int64         `json:"wait_count"`
	WaitDuration       time.Duration `json:"wait_duration" swaggertype:"integer"`
}

// ProbeResult is the outcome of the most recent background store probe.
type ProbeResult struct {
	CheckedAt time.Time     `json:"checked_at"`
	Latency   time.Duration `json:"latency" swaggertype:"integer"`
	Error     string        `json:"error,omitempty"`
}

// HealthStatus represents the store health as seen by this instance.
type HealthStatus struct {
	Healthy   bool          `json:"healthy"`
	Latency   time.Duration `json:"latency" swaggertype:"integer"`
	Error     string        `json:"error,omitempty"`
	PoolStats PoolStats     `json:"pool_stats"`
	LastProbe *ProbeResult  `json:"last_probe,omitempty"`
}
