package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kalendo/kalendo/internal/config"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, the wizard services, and the update
// delivery mode (long polling or webhook server).
type Application struct {
	cfg  config.Application
	deps *Dependencies
	srv  *http.Server
}

// NewApplication constructs the full application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}

	app := &Application{cfg: cfg, deps: deps}

	if cfg.Telegram.Webhook.Enabled {
		r := mux.NewRouter()
		SetupMiddleware(r)
		RegisterRoutes(r, deps)

		app.srv = &http.Server{
			Handler:      r,
			Addr:         cfg.Telegram.Webhook.ListenAddr,
			WriteTimeout: 15 * time.Second,
			ReadTimeout:  15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
	}

	return app, nil
}

// Run blocks, consuming Telegram updates either through the webhook server
// or over long polling.
func (a *Application) Run() error {
	if a.srv != nil {
		if err := a.deps.Bot.RegisterWebhook(a.cfg.Telegram.Webhook.URL); err != nil {
			return err
		}
		log.Infof("Starting webhook server on %s", a.srv.Addr)
		return a.srv.ListenAndServe()
	}

	log.Info("Starting long-poll update loop")
	return a.deps.Bot.Run(context.Background())
}
