package internal

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	RunAddress           string        `env:"RUN_ADDRESS" env-default:"localhost:8080"`
	DatabaseURI          string        `env:"DATABASE_URI" env-default:"host=localhost port=5432 user=postgres password=12345 sslmode=disable"`
	CarrierSystemAddress string        `env:"CARRIER_SYSTEM_ADDRESS"`
	CarrierWorkers       int           `env:"CARRIER_WORKERS" env-default:"2"`
	CarrierPollInterval  time.Duration `env:"CARRIER_POLL_INTERVAL" env-default:"30s"`
	AMQPURL              string        `env:"AMQP_URL"`
	JWTSecret            string        `env:"JWT_SECRET" env-default:"secret"`
	EventsKeepAlive      time.Duration `env:"EVENTS_KEEPALIVE" env-default:"15s"`
}

func NewConfig() *Config {
	c, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// LoadConfig reads the environment first; flags given in args win over it.
func LoadConfig(args []string) (*Config, error) {
	c := new(Config)
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("shopmart", flag.ContinueOnError)
	fs.StringVar(&c.RunAddress, "a", c.RunAddress, "host to listen on")
	fs.StringVar(&c.DatabaseURI, "d", c.DatabaseURI, "postgres connection path")
	fs.StringVar(&c.CarrierSystemAddress, "c", c.CarrierSystemAddress, "carrier system address")
	fs.StringVar(&c.AMQPURL, "m", c.AMQPURL, "amqp broker url")
	fs.StringVar(&c.JWTSecret, "s", c.JWTSecret, "jwt signing secret")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}
