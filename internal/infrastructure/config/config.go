package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/brandvault/brandvault/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Billing    sharedConfig.BillingConfig    `mapstructure:"billing"`
	Storage    sharedConfig.StorageConfig    `mapstructure:"storage"`
	RateLimit  sharedConfig.RateLimitConfig  `mapstructure:"ratelimit"`
	Permission sharedConfig.PermissionConfig `mapstructure:"permission"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (optional) and BRANDVAULT_* environment variables.
// An explicit path overrides the search directories.
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()

	if len(paths) > 0 && paths[0] != "" {
		v.SetConfigFile(paths[0])
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("BRANDVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "brandvault_dev")
	v.SetDefault("database.path", "brandvault.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.exp_days", 7)
	v.SetDefault("auth.cookie.name", "auth-token")
	v.SetDefault("auth.cookie.domain", "")
	v.SetDefault("auth.cookie.path", "/")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.cookie.same_site", "Lax")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("billing.secret_key", "")
	v.SetDefault("billing.webhook_secret", "")
	v.SetDefault("billing.app_url", "http://localhost:3000")

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.local_dir", "./uploads")
	v.SetDefault("storage.public_base_url", "http://localhost:8080/uploads")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.presign_minutes", 15)

	v.SetDefault("ratelimit.limit", 20)
	v.SetDefault("ratelimit.window_seconds", 60)

	v.SetDefault("permission.policy_file", "./configs/policy.yaml")
}
