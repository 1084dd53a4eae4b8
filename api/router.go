package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter creates the HTTP router
func NewRouter(handler *Handler) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", handler.Home).Methods("GET")
	router.HandleFunc("/api/trigger", handler.Trigger).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(NotFound)

	return CORS(Recover(RequestID(router)))
}
