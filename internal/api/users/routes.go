package users

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the user directory endpoints.
func RegisterRoutes(r *mux.Router, handler *Handler) {
	r.HandleFunc("/api/users", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[USERS] %s %s", req.Method, req.URL.Path)
		handler.List(w, req)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/user-id-by-email/{email}", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[USERS] %s %s", req.Method, req.URL.Path)
		handler.IDByEmail(w, req)
	}).Methods(http.MethodGet)
}
