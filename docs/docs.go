// Package docs holds the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Confirms the HTTP server is running. Does not touch the store.",
                "produces": ["application/json"],
                "tags": ["Info"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Status"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Pings the store through the pool and reports pool counters and the last background probe.",
                "produces": ["application/json"],
                "tags": ["Info"],
                "summary": "Store health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthStatus"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.HealthStatus"}}
                }
            }
        },
        "/info": {
            "get": {
                "description": "Retrieves general information about the service: name, version, start time and store driver.",
                "produces": ["application/json"],
                "tags": ["Info"],
                "summary": "Get service information",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Info"}}
                }
            }
        },
        "/todos": {
            "get": {
                "description": "Returns every todo list, newest first.",
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "List todo lists",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.TodoList"}}},
                    "500": {"description": "Error loading todo lists", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            },
            "post": {
                "description": "Creates a todo list and returns it with its generated id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create a todo list",
                "parameters": [
                    {"description": "List title", "name": "list", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateTodoListPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TodoList"}},
                    "400": {"description": "Malformed body or empty title", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "500": {"description": "Error creating TODO list", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            }
        },
        "/todos/{list_id}/items": {
            "get": {
                "description": "Returns the items of a list in insertion order. An unknown list yields an empty array.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items of a todo list",
                "parameters": [
                    {"type": "integer", "description": "Todo list id", "name": "list_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.TodoItem"}}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "500": {"description": "Error loading todo items", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            },
            "post": {
                "description": "Adds an unchecked item to a list. The body list_id may be omitted; when present it must match the path.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Create a todo item",
                "parameters": [
                    {"type": "integer", "description": "Todo list id", "name": "list_id", "in": "path", "required": true},
                    {"description": "Item title", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateTodoItemPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TodoItem"}},
                    "400": {"description": "Malformed body, empty title or list_id mismatch", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Referenced todo list not found", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "500": {"description": "Error creating TODO item", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            }
        },
        "/todos/{list_id}/items/{item_id}": {
            "put": {
                "description": "Marks an item as checked. success is true only when this request flipped the flag.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Check a todo item",
                "parameters": [
                    {"type": "integer", "description": "Todo list id", "name": "list_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Todo item id", "name": "item_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ResultResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "500": {"description": "Error checking todo item", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.CreateTodoItemPayload": {
            "type": "object",
            "properties": {
                "list_id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Milk"}
            }
        },
        "models.CreateTodoListPayload": {
            "type": "object",
            "properties": {"title": {"type": "string", "example": "Groceries"}}
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "healthy": {"type": "boolean"},
                "last_probe": {"$ref": "#/definitions/models.ProbeResult"},
                "latency": {"type": "integer"},
                "pool_stats": {"$ref": "#/definitions/models.PoolStats"}
            }
        },
        "models.Info": {
            "type": "object",
            "properties": {
                "driver": {"type": "string"},
                "service_name": {"type": "string"},
                "uptime_since": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "models.PoolStats": {
            "type": "object",
            "properties": {
                "idle": {"type": "integer"},
                "in_use": {"type": "integer"},
                "max_open_connections": {"type": "integer"},
                "open_connections": {"type": "integer"},
                "wait_count": {"type": "integer"},
                "wait_duration": {"type": "integer"}
            }
        },
        "models.ProbeResult": {
            "type": "object",
            "properties": {
                "checked_at": {"type": "string"},
                "error": {"type": "string"},
                "latency": {"type": "integer"}
            }
        },
        "models.ResultResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "models.Status": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "models.TodoItem": {
            "type": "object",
            "properties": {
                "checked": {"type": "boolean"},
                "id": {"type": "integer"},
                "list_id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.TodoList": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TodoHub-API",
	Description:      "Todo lists and checkable items backed by a pooled relational store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
