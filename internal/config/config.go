package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Mongo      Mongo      `yaml:"mongo"`
	Session    Session    `yaml:"session"`
	CORS       CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_SERVER_ADDRESS" env-default:"0.0.0.0:5000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"120s"`
}

type Mongo struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `yaml:"database" env:"MONGO_DB" env-default:"onlineGroupStudyDB"`
}

type Session struct {
	Secret string        `yaml:"secret" env:"ACCESS_TOKEN_SECRET"`
	TTL    time.Duration `yaml:"ttl" env-default:"1h"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:5174"`
}

func MustLoad() *Config {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var config Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &config); err != nil {
			log.Fatalf("cannot read config %s: %v", configPath, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&config); err != nil {
			log.Fatalf("cannot read config from env: %v", err)
		}
	}
	return &config
}
