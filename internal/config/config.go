package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

type config struct {
	Production         bool          `env:"PRODUCTION" envDefault:"false"`
	Port               string        `env:"PORT" envDefault:"8080"`
	Storage            string        `env:"STORAGE" envDefault:"redis"`
	RedisUrl           string        `env:"REDIS_URL" envDefault:"redis:6379"`
	PostgresUrl        string        `env:"POSTGRES_URL" envDefault:""`
	PlannerStateKey    string        `env:"PLANNER_STATE_KEY" envDefault:"barnameh-data"`
	Secret             string        `env:"SECRET" envDefault:""`
	JwtTTL             time.Duration `env:"TOKEN_TTL" envDefault:"20m"`
	SessionTTl         time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionTokenLength int           `env:"SESSION_TOKEN_LENGTH" envDefault:"32"`
}

var conf config

func init() {
	_ = godotenv.Load()

	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

// Storage selects the planner state backend: "redis" or "postgres".
func Storage() string {
	return conf.Storage
}

func RedisURL() string {
	return conf.RedisUrl
}

func PostgresURL() string {
	return conf.PostgresUrl
}

// PlannerStateKey is the fixed key the whole planner state blob lives under.
func PlannerStateKey() string {
	return conf.PlannerStateKey
}

func Secret() string {
	return conf.Secret
}

func JwtTTL() time.Duration {
	return conf.JwtTTL
}

func SessionTTl() time.Duration {
	return conf.SessionTTl
}

func SessionTokenLength() int {
	return conf.SessionTokenLength
}
