package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"

	"eventstream/infrastructure/logger"
)

type Config struct {
	Database    Database    `json:"database"`
	App         App         `json:"app"`
	RedisClient RedisClient `json:"redisClient"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
	// TokenTTLSeconds defaults to 3600 when unset.
	TokenTTLSeconds int `json:"tokenTTLSeconds"`
	// HashCost is the bcrypt cost factor; 0 means the library default.
	HashCost int `json:"hashCost"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	// Enabled gates the statistics cache; the service runs without Redis.
	Enabled bool `json:"enabled"`
}

var C Config

// Load reads config.json (or config-<ENV>.json) and applies environment
// overrides. Environment always wins so containerized deployments need no
// config file at all.
func Load() {
	name := configName()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found; relying on environment variables")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}

	applyEnvOverrides(&C)
}

func configName() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Psql.Name = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Psql.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Database.Psql.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.Psql.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Psql.Password = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.App.SecretKey = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if c.App.Port == 0 {
		c.App.Port = 10001
	}
	if c.App.TokenTTLSeconds == 0 {
		c.App.TokenTTLSeconds = 3600
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.RedisClient.Host = v
		c.RedisClient.Enabled = true
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		c.RedisClient.Port = v
	}
	if v := os.Getenv("REDIS_USERNAME"); v != "" {
		c.RedisClient.Username = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.RedisClient.Password = v
	}
}

// Validate refuses to start without the token secret or any store connection
// parameter. Running with a default secret is never acceptable.
func (c *Config) Validate() error {
	if c.App.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	db := c.Database.Psql
	missing := []string{}
	if db.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if db.Port == "" {
		missing = append(missing, "DB_PORT")
	}
	if db.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if db.User == "" {
		missing = append(missing, "DB_USER")
	}
	if db.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing database configuration: %v", missing)
	}
	return nil
}
