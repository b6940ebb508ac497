package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all HTTP endpoints for webhook mode.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {
	r.HandleFunc("/webhook/{secret}", deps.Bot.HandleWebhook).Methods("POST")

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
}
