package realtime

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the websocket endpoint.
func RegisterRoutes(r *mux.Router, handler *Handler) {
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[WS] %s %s", req.Method, req.URL.String())
		handler.ServeWS(w, req)
	}).Methods(http.MethodGet)
}
