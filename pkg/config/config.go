package config

import "time"

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Storage StorageConfig `mapstructure:"storage"`
	Report  ReportConfig  `mapstructure:"report"`
	Cache   CacheConfig   `mapstructure:"cache"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	RateLimit    int           `mapstructure:"rate_limit"`
	BodyLimit    int           `mapstructure:"body_limit"`
}

type JWTConfig struct {
	Secret              string        `mapstructure:"secret"`
	AccessTokenDuration time.Duration `mapstructure:"access_token_duration"`
	Issuer              string        `mapstructure:"issuer"`
}

// AdminConfig carries the single administrative account. PasswordHash is a
// bcrypt hash, never the plain password.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type StorageConfig struct {
	DataDir       string `mapstructure:"data_dir"`
	GroupsDir     string `mapstructure:"groups_dir"`
	EventsFile    string `mapstructure:"events_file"`
	TimeslotsFile string `mapstructure:"timeslots_file"`
}

type ReportConfig struct {
	// PairWindow is the maximum elapsed time between an exit and the return
	// that may close it.
	PairWindow time.Duration `mapstructure:"pair_window"`
	// HistogramMaxMinutes bounds the duration chart; pairs at or beyond it
	// stay in the statistics but are not drawn.
	HistogramMaxMinutes int `mapstructure:"histogram_max_minutes"`
	// TempDir is the root under which each invocation gets its own directory.
	TempDir string `mapstructure:"temp_dir"`
	// CleanupDelay is how long a finished artifact survives before its temp
	// directory is removed in the background.
	CleanupDelay time.Duration `mapstructure:"cleanup_delay"`
}

type CacheConfig struct {
	RedisURL        string        `mapstructure:"redis_url"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
