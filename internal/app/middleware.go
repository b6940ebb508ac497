package app

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the webhook server.
func SetupMiddleware(r *mux.Router) {

	// Request logging. The webhook path embeds the bot token, so the URL
	// itself must never be logged.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.Debugf("%s request from %s", req.Method, req.RemoteAddr)
			next.ServeHTTP(w, req)
		})
	})
}
