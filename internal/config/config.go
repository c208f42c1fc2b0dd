package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string      `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis       Redis       `yaml:"redis"`
	Postgres    Postgres    `yaml:"postgres"`
	JWT         JWT         `yaml:"jwt"`
	Token       Token       `yaml:"token"`
	Matchmaking Matchmaking `yaml:"matchmaking"`
	Reaper      Reaper      `yaml:"reaper"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Name     string `yaml:"name" env:"POSTGRES_DB" env-default:"tictactoe"`
	SSLMode  string `yaml:"ssl-mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
}

type JWT struct {
	SecretKey string        `yaml:"secret-key" env:"JWT_SECRET_KEY" env-required:"true"`
	TTL       time.Duration `yaml:"ttl" env:"JWT_TTL" env-default:"24h"`
}

// Token - ephemeral websocket credentials.
type Token struct {
	TTL       time.Duration `yaml:"ttl" env:"WS_TOKEN_TTL" env-default:"300s"`
	SingleUse bool          `yaml:"single-use" env:"WS_TOKEN_SINGLE_USE" env-default:"false"`
}

type Matchmaking struct {
	PersistAttempts int           `yaml:"persist-attempts" env-default:"3"`
	PersistBackoff  time.Duration `yaml:"persist-backoff" env-default:"200ms"`
}

type Reaper struct {
	Interval  time.Duration `yaml:"interval" env-default:"1m"`
	IdleAfter time.Duration `yaml:"idle-after" env-default:"30m"`
}

type Leaderboard struct {
	MinGames int `yaml:"min-games" env-default:"3"`
	Limit    int `yaml:"limit" env-default:"3"`
}

// MustLoad - loads an optional .env file and then the config.yml file.
func MustLoad(path string) *Config {
	// .env is optional
	_ = godotenv.Load()

	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Postgres) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		that.Host, that.Port, that.User, that.Password, that.Name, that.SSLMode)
}
