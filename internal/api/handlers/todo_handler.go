// filepath: internal/api/handlers/todo_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"todohub/internal/models"
	"todohub/internal/services"
)

// @Summary List todo lists
// @Description Returns every todo list, newest first.
// @Tags todos
// @Produce  json
// @Success 200 {array} models.TodoList
// @Failure 500 {object} MessageResponse "Error loading todo lists"
// @Failure 503 {object} MessageResponse "Store unavailable"
// @Router /todos [get]
func (h *Handlers) GetTodoLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Todo.ListTodoLists(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, lists)
}

// @Summary Create a todo list
// @Description Creates a todo list and returns it with its generated id.
// @Tags todos
// @Accept  json
// @Produce  json
// @Param   list  body  models.CreateTodoListPayload  true  "List title"
// @Success 200 {object} models.TodoList
// @Failure 400 {object} MessageResponse "Malformed body or empty title"
// @Failure 500 {object} MessageResponse "Error creating TODO list"
// @Failure 503 {object} MessageResponse "Store unavailable"
// @Router /todos [post]
func (h *Handlers) CreateTodoList(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateTodoListPayload
	if err := h.decodeBody(w, r, &payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	list, err := h.Todo.CreateTodoList(r.Context(), payload.Title)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "todo_list.create", clientAddr(r), fmt.Sprintf("todo_list:%d", list.ID), map[string]interface{}{
		"title": list.Title,
	})
	respondWithJSON(w, http.StatusOK, list)
}

// @Summary List items of a todo list
// @Description Returns the items of a list in insertion order. An unknown list yields an empty array.
// @Tags items
// @Produce  json
// @Param   list_id  path  int  true  "Todo list id"
// @Success 200 {array} models.TodoItem
// @Failure 404 {object} MessageResponse "Not found"
// @Failure 500 {object} MessageResponse "Error loading todo items"
// @Failure 503 {object} MessageResponse "Store unavailable"
// @Router /todos/{list_id}/items [get]
func (h *Handlers) GetItems(w http.ResponseWriter, r *http.Request) {
	listID, ok := parsePathID(r, "list_id")
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found")
		return
	}

	items, err := h.Todo.ListItems(r.Context(), listID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

// @Summary Create a todo item
// @Description Adds an unchecked item to a list. The body list_id may be omitted; when present it must match the path.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   list_id  path  int                           true  "Todo list id"
// @Param   item     body  models.CreateTodoItemPayload  true  "Item title"
// @Success 200 {object} models.TodoItem
// @Failure 400 {object} MessageResponse "Malformed body, empty title or list_id mismatch"
// @Failure 404 {object} MessageResponse "Referenced todo list not found"
// @Failure 500 {object} MessageResponse "Error creating TODO item"
// @Failure 503 {object} MessageResponse "Store unavailable"
// @Router /todos/{list_id}/items [post]
func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	pathID, ok := parsePathID(r, "list_id")
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found")
		return
	}

	var payload models.CreateTodoItemPayload
	if err := h.decodeBody(w, r, &payload); err != nil {
		respondWithAppError(w, err)
		return
	}

	listID, err := services.ResolveListID(pathID, payload.ListID, h.strictValidation())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	item, err := h.Todo.CreateTodoItem(r.Context(), payload.Title, listID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "todo_item.create", clientAddr(r), fmt.Sprintf("todo_item:%d/%d", item.ListID, item.ID), map[string]interface{}{
		"title": item.Title,
	})
	respondWithJSON(w, http.StatusOK, item)
}

// @Summary Check a todo item
// @Description Marks an item as checked. success is true only when this request flipped the flag.
// @Tags items
// @Produce  json
// @Param   list_id  path  int  true  "Todo list id"
// @Param   item_id  path  int  true  "Todo item id"
// @Success 200 {object} models.ResultResponse
// @Failure 404 {object} MessageResponse "Not found"
// @Failure 500 {object} MessageResponse "Error checking todo item"
// @Failure 503 {object} MessageResponse "Store unavailable"
// @Router /todos/{list_id}/items/{item_id} [put]
func (h *Handlers) CheckItem(w http.ResponseWriter, r *http.Request) {
	listID, ok := parsePathID(r, "list_id")
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	itemID, ok := parsePathID(r, "item_id")
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found")
		return
	}

	success, err := h.Todo.CheckItem(r.Context(), listID, itemID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "todo_item.check", clientAddr(r), fmt.Sprintf("todo_item:%d/%d", listID, itemID), map[string]interface{}{
		"success": success,
	})
	respondWithJSON(w, http.StatusOK, models.ResultResponse{Success: success})
}
