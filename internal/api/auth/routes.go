package auth

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the open authentication endpoints.
func RegisterRoutes(r *mux.Router, handler *Handler) {
	r.HandleFunc("/api/register", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[AUTH] %s %s", req.Method, req.URL.Path)
		handler.Register(w, req)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/login", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[AUTH] %s %s", req.Method, req.URL.Path)
		handler.Login(w, req)
	}).Methods(http.MethodPost)
}
