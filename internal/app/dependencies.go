package app

import (
	"fmt"
	"time"

	"github.com/kalendo/kalendo/internal/config"
	"github.com/kalendo/kalendo/internal/telegram"
	"github.com/kalendo/kalendo/internal/utils"
	"github.com/kalendo/kalendo/pkg/eventlink"
	"github.com/kalendo/kalendo/pkg/wizard"
)

// Dependencies holds all services wired into the application.
type Dependencies struct {
	Builder       *eventlink.Builder
	SessionStore  wizard.SessionStore
	WizardService *wizard.Service
	Bot           *telegram.Bot

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	duration, err := time.ParseDuration(cfg.Event.Duration)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event duration %q: %w", cfg.Event.Duration, err)
	}

	deps.Clock = &utils.SystemClock{}
	deps.Builder, err = eventlink.NewBuilder(cfg.Event.Timezone, duration, cfg.Calendar.BaseURL, deps.Clock)
	if err != nil {
		return nil, err
	}

	deps.SessionStore = wizard.NewInMemoryStore()
	deps.WizardService = wizard.NewService(deps.SessionStore, deps.Builder, deps.Clock)

	deps.Bot, err = telegram.NewBot(cfg.Telegram.Token, deps.WizardService)
	if err != nil {
		return nil, err
	}

	return deps, nil
}
