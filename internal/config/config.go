package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultAPIBaseURL = "https://api.dairyfresh.in/api/v1"

type Config struct {
	GRPCAddr   string        `yaml:"grpc_addr"`
	APIBaseURL string        `yaml:"api_base_url"`
	APITimeout time.Duration `yaml:"api_timeout"`
	JWTSecret  string        `yaml:"jwt_secret"`
	Timezone   string        `yaml:"timezone"`
	LogLevel   string        `yaml:"log_level"`
	CacheTTL   time.Duration `yaml:"cache_ttl"`
	DB         DBConfig      `yaml:"db"`
	Redis      RedisConfig   `yaml:"redis"`
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func Default() Config {
	return Config{
		GRPCAddr:   ":50051",
		APIBaseURL: DefaultAPIBaseURL,
		APITimeout: 30 * time.Second,
		Timezone:   "Asia/Kolkata",
		LogLevel:   "info",
		CacheTTL:   5 * time.Minute,
		DB:         DBConfig{Host: "localhost", Port: "5432", User: "postgres", Name: "dairyadmin"},
		Redis:      RedisConfig{Addr: "localhost:6379"},
	}
}

// Load reads the optional YAML file at path, then .env, then the process
// environment; later sources win.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	_ = godotenv.Load()
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return cfg, fmt.Errorf("TIMEZONE: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"GRPC_ADDR":      &cfg.GRPCAddr,
		"API_BASE_URL":   &cfg.APIBaseURL,
		"JWT_SECRET":     &cfg.JWTSecret,
		"TIMEZONE":       &cfg.Timezone,
		"LOG_LEVEL":      &cfg.LogLevel,
		"DB_HOST":        &cfg.DB.Host,
		"DB_PORT":        &cfg.DB.Port,
		"DB_USER":        &cfg.DB.User,
		"DB_PASSWORD":    &cfg.DB.Password,
		"DB_NAME":        &cfg.DB.Name,
		"REDIS_ADDR":     &cfg.Redis.Addr,
		"REDIS_USERNAME": &cfg.Redis.Username,
		"REDIS_PASSWORD": &cfg.Redis.Password,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	dur := map[string]*time.Duration{
		"API_TIMEOUT": &cfg.APITimeout,
		"CACHE_TTL":   &cfg.CacheTTL,
	}
	for key, dst := range dur {
		if v, ok := os.LookupEnv(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}
	if v, ok := os.LookupEnv("REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = n
	}
	return nil
}
