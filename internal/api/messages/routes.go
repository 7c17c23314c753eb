package messages

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the message endpoints.
func RegisterRoutes(r *mux.Router, handler *Handler) {
	r.HandleFunc("/api/messages", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[MSG] %s %s", req.Method, req.URL.Path)
		handler.Send(w, req)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/message/{conversationId}", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[MSG] %s %s", req.Method, req.URL.Path)
		handler.History(w, req)
	}).Methods(http.MethodGet)
}
