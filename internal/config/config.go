package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`
	StampTarget int    `env:"STAMP_TARGET" envDefault:"10"`
	EventBuffer int    `env:"EVENT_BUFFER" envDefault:"64"`
}

// Config модель настроек сервиса
type Config struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	StampTarget int
	EventBuffer int
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		level  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		secret = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		stamps = pflag.IntP("stamps", "t", args.StampTarget, "Loyalty stamps needed for a free drink.")
		buffer = pflag.IntP("events", "e", args.EventBuffer, "Notification event buffer size.")
	)
	pflag.Parse()

	return Config{
		ListenAddr:  *server,
		LogLevel:    *level,
		JWTSecret:   *secret,
		StampTarget: *stamps,
		EventBuffer: *buffer,
	}
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:  "localhost:8080",
		LogLevel:    "info",
		JWTSecret:   "secret",
		StampTarget: 10,
		EventBuffer: 64,
	}
}
