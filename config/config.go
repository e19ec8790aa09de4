package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config is populated from the environment. The process refuses to start
// without the database credentials.
type Config struct {
	MongoUser string `envconfig:"MONGO_USER" required:"true"`
	MongoPass string `envconfig:"MONGO_PASS" required:"true"`
	MongoHost string `envconfig:"MONGO_HOST" default:"localhost:27017"`
	Database  string `envconfig:"DB" default:"vacation_rental"`

	Port string `envconfig:"PORT" default:"5000"`

	RedisAddr string `envconfig:"REDIS_ADDR"`
	RedisPass string `envconfig:"REDIS_PASS"`

	JWTKey string `envconfig:"JWT_KEY" default:"dev-only-secret"`
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	// envconfig's required tag only checks that the key is set; an empty
	// value still has to be rejected.
	if cfg.MongoUser == "" || cfg.MongoPass == "" {
		return cfg, errors.New("MONGO_USER and MONGO_PASS must be set")
	}
	return cfg, nil
}
