package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("PASSLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without the PASSLOG_ prefix for container deploys
	viper.BindEnv("http.port", "HTTP_PORT", "PASSLOG_HTTP_PORT")
	viper.BindEnv("jwt.secret", "JWT_SECRET", "PASSLOG_JWT_SECRET")
	viper.BindEnv("admin.username", "ADMIN_USERNAME", "PASSLOG_ADMIN_USERNAME")
	viper.BindEnv("admin.password_hash", "ADMIN_PASSWORD_HASH", "PASSLOG_ADMIN_PASSWORD_HASH")
	viper.BindEnv("cache.redis_url", "REDIS_URL", "PASSLOG_CACHE_REDIS_URL")
	viper.BindEnv("storage.data_dir", "DATA_DIR", "PASSLOG_STORAGE_DATA_DIR")
	viper.BindEnv("logging.level", "LOG_LEVEL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config file: env vars and defaults carry the whole config
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "passlog")
	viper.SetDefault("app.version", "v1.0.0")
	viper.SetDefault("app.environment", "development")

	viper.SetDefault("http.port", 4000)
	viper.SetDefault("http.read_timeout", 10*time.Second)
	viper.SetDefault("http.write_timeout", 30*time.Second)
	viper.SetDefault("http.rate_limit", 60)
	viper.SetDefault("http.body_limit", 4*1024*1024)

	viper.SetDefault("jwt.access_token_duration", 8*time.Hour)
	viper.SetDefault("jwt.issuer", "passlog")

	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("storage.groups_dir", "./data/groups")
	viper.SetDefault("storage.events_file", "./data/output.csv")
	viper.SetDefault("storage.timeslots_file", "./data/timeslots.txt")

	viper.SetDefault("report.pair_window", 20*time.Minute)
	viper.SetDefault("report.histogram_max_minutes", 20)
	viper.SetDefault("report.temp_dir", "./data/temp")
	viper.SetDefault("report.cleanup_delay", 5*time.Minute)

	viper.SetDefault("cache.ttl", 30*time.Second)
	viper.SetDefault("cache.cleanup_interval", time.Minute)

	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("logging.level", "info")
}
