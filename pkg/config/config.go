package config

import (
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	GetString(key string) string
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
}

type config struct {
	cfg *viper.Viper
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	_ = cfg.BindEnv("server.host", "SERVICE_HOST")
	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("database.uri", "MONGO_URI")
	_ = cfg.BindEnv("database.name", "MONGO_DATABASE")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("redis.prefix", "REDIS_PREFIX")
	_ = cfg.BindEnv("log.level", "LOG_LEVEL")

	if addrs := os.Getenv("REDIS_ADDRS"); addrs != "" {
		cfg.Set("redis.addrs", strings.Split(addrs, ","))
	}

	// SERVICE_HTTP_PORT wins when both it and PORT are present.
	if cfg.GetString("server.port") == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Set("server.port", port)
		}
	}
	if cfg.GetString("server.port") == "" {
		cfg.Set("server.port", "4000")
	}
	if !strings.HasPrefix(cfg.GetString("server.port"), ":") {
		cfg.Set("server.port", ":"+cfg.GetString("server.port"))
	}

	if cfg.GetString("database.name") == "" {
		cfg.Set("database.name", "tgshop")
	}

	return &config{cfg: cfg}
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}
