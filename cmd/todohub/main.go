// filepath: cmd/todohub/main.go
package main

import (
	"todohub/internal/cli"

	// Import docs for Swagger
	_ "todohub/docs"
)

// @title TodoHub-API
// @version 1.0.0
// @description REST API for todo lists and their items.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
