package conversations

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the conversation endpoints.
func RegisterRoutes(r *mux.Router, handler *Handler) {
	r.HandleFunc("/api/conversation", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[CONV] %s %s", req.Method, req.URL.Path)
		handler.Create(w, req)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/conversation/{userId}", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[CONV] %s %s", req.Method, req.URL.Path)
		handler.ListForUser(w, req)
	}).Methods(http.MethodGet)
}
