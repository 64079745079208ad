// Package config carries the boundary knobs of the tool. Core scoring
// vocabulary and weights are fixed data in the quote package; only
// operational settings live here, overridable via environment or .env.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

var conf = mustLoad()

type Config struct {
	Workers   int    `envconfig:"SHAREQUOTE_WORKERS" default:"4"`
	LogLevel  string `envconfig:"SHAREQUOTE_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"SHAREQUOTE_LOG_FORMAT" default:"text"`
	Output    string `envconfig:"SHAREQUOTE_OUTPUT" default:"summaries.csv"`
}

func load() (Config, error) {
	_ = godotenv.Load() // best-effort: load .env if present

	cfg := Config{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func mustLoad() Config {
	c, err := load()
	if err != nil {
		log.WithError(err).Warn("unable to load configuration, using defaults")
	}
	return c
}

func Get() Config {
	return conf
}
