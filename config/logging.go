package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the global logger: JSON output in production,
// text elsewhere, at the configured level.
func SetupLogging(c *Config) {
	log.SetOutput(os.Stdout)

	if c.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
