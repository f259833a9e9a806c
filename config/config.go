package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Vault    VaultConfig    `mapstructure:"vault"`
	Rates    RatesConfig    `mapstructure:"rates"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// VaultConfig carries the master secret that derives the symmetric key for
// all stored key material. Rotating it invalidates previously encrypted
// records.
type VaultConfig struct {
	MasterSecret string `mapstructure:"master_secret"`
}

type RatesConfig struct {
	FeedURL         string        `mapstructure:"feed_url"`
	City            string        `mapstructure:"city"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	MaxStaleness    time.Duration `mapstructure:"max_staleness"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

type ChainConfig struct {
	APIURL         string        `mapstructure:"api_url"`
	USDTContract   string        `mapstructure:"usdt_contract"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type TelegramConfig struct {
	BotToken     string `mapstructure:"bot_token"`
	AdminChatID  string `mapstructure:"admin_chat_id"`
	PanelBaseURL string `mapstructure:"panel_base_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MNW_.
// Nested keys use underscore: MNW_DATABASE_HOST, MNW_VAULT_MASTER_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "mnw_wallet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "mnw-wallet")
	v.SetDefault("vault.master_secret", "")
	v.SetDefault("rates.feed_url", "https://xn--e1anbce0ah.xn--p1ai/rates.json")
	v.SetDefault("rates.city", "nnov")
	v.SetDefault("rates.refresh_interval", "30s")
	v.SetDefault("rates.max_staleness", "5m")
	v.SetDefault("rates.request_timeout", "10s")
	v.SetDefault("chain.api_url", "https://api.trongrid.io")
	v.SetDefault("chain.usdt_contract", "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t")
	v.SetDefault("chain.poll_interval", "60s")
	v.SetDefault("chain.request_timeout", "10s")
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.admin_chat_id", "")
	v.SetDefault("telegram.panel_base_url", "http://localhost:3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MNW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MNW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
