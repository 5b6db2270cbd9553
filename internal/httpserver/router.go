package httpserver

import (
	"net/http"

	_ "todohub/docs" // registers the swagger document
	"todohub/internal/api/handlers"
	"todohub/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router. collector may be nil, in which
// case no /metrics endpoint is mounted.
func SetupRouter(h *handlers.Handlers, collector *metrics.Collector, logger *logrus.Logger) *mux.Router {
	m := NewMiddleware(logger, collector)

	r := mux.NewRouter()
	r.Use(m.RequestID, m.Observe)
	r.NotFoundHandler = m.Wrap(http.HandlerFunc(notFound))
	r.MethodNotAllowedHandler = m.Wrap(http.HandlerFunc(methodNotAllowed))

	// Public Endpoints
	r.HandleFunc("/", h.GetStatus).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	if collector != nil {
		r.Handle("/metrics", collector.Handler()).Methods("GET")
	}

	addTodoRoutes(r, h)

	return r
}

// addTodoRoutes configures the todo list and item routes. Path ids are
// constrained to digits so other segments never reach a handler.
func addTodoRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/todos", h.GetTodoLists).Methods("GET")
	r.HandleFunc("/todos", h.CreateTodoList).Methods("POST")
	r.HandleFunc("/todos/{list_id:[0-9]+}/items", h.GetItems).Methods("GET")
	r.HandleFunc("/todos/{list_id:[0-9]+}/items", h.CreateItem).Methods("POST")
	r.HandleFunc("/todos/{list_id:[0-9]+}/items/{item_id:[0-9]+}", h.CheckItem).Methods("PUT")
}
