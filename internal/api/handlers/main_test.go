// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"todohub/internal/config"
	"todohub/internal/logging"
	"todohub/internal/models"
	"todohub/internal/services/mocks"

	"github.com/gorilla/mux"
)

type testAPI struct {
	server  *httptest.Server
	todo    *mocks.MockTodoService
	health  *mocks.MockHealthService
	auditor *mocks.MockAuditor
}

// setupHandlerTestAPI creates a test server with mocked services behind the
// same route patterns the production router uses.
func setupHandlerTestAPI(t *testing.T, strict bool) (*testAPI, func()) {
	t.Helper()

	infoSvc := new(mocks.MockInfoService)
	infoSvc.On("GetInfo").Return(models.Info{
		ServiceName: "TodoHub-API",
		Version:     "test",
		UptimeSince: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Driver:      "sqlite",
	})

	api := &testAPI{
		todo:    new(mocks.MockTodoService),
		health:  new(mocks.MockHealthService),
		auditor: new(mocks.MockAuditor),
	}

	cfg := &config.Config{API: config.APIConfig{StrictValidation: &strict}}
	h := NewHandlers(infoSvc, api.todo, api.health, api.auditor, cfg, logging.NewLoggerWithOutput("error", io.Discard))

	r := mux.NewRouter()
	r.HandleFunc("/", h.GetStatus).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/info", h.GetInfo).Methods("GET")
	r.HandleFunc("/todos", h.GetTodoLists).Methods("GET")
	r.HandleFunc("/todos", h.CreateTodoList).Methods("POST")
	r.HandleFunc("/todos/{list_id:[0-9]+}/items", h.GetItems).Methods("GET")
	r.HandleFunc("/todos/{list_id:[0-9]+}/items", h.CreateItem).Methods("POST")
	r.HandleFunc("/todos/{list_id:[0-9]+}/items/{item_id:[0-9]+}", h.CheckItem).Methods("PUT")

	api.server = httptest.NewServer(r)

	cleanup := func() {
		api.server.Close()
	}

	return api, cleanup
}
