package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Telegram Telegram `koanf:"telegram"`
	Event    Event    `koanf:"event"`
	Calendar Calendar `koanf:"calendar"`
}

type Telegram struct {
	Token   string  `koanf:"token"`
	Webhook Webhook `koanf:"webhook"`
}

type Webhook struct {
	Enabled    bool   `koanf:"enabled"`
	URL        string `koanf:"url"`
	ListenAddr string `koanf:"listenaddr"`
}

type Event struct {
	// Timezone anchors every collected date and time; it is shared by all
	// conversations, not per-user.
	Timezone string `koanf:"timezone"`
	Duration string `koanf:"duration"`
}

type Calendar struct {
	BaseURL string `koanf:"baseurl"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Telegram: Telegram{
			Webhook: Webhook{
				Enabled:    false,
				ListenAddr: ":8181",
			},
		},
		Event: Event{
			Timezone: "Europe/Kyiv",
			Duration: "1h",
		},
		Calendar: Calendar{
			BaseURL: "https://calendar.google.com/calendar/render",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.ProviderWithValue("KALENDO_", ".", func(k, v string) (string, interface{}) {
		// Transform the key.
		k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "KALENDO_")), "_", ".")
		return k, v
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
