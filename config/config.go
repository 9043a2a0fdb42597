package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Store        StoreConfig        `mapstructure:"store"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Encryption   EncryptionConfig   `mapstructure:"encryption"`
	Vault        VaultConfig        `mapstructure:"vault"`
	Blob         BlobConfig         `mapstructure:"blob"`
	Notification NotificationConfig `mapstructure:"notification"`
	Access       AccessConfig       `mapstructure:"access"`
	Audit        AuditConfig        `mapstructure:"audit"`
	Retry        RetryConfig        `mapstructure:"retry"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	RateLimit    int           `mapstructure:"rate_limit"` // requests per minute per caller
	NonceTTL     time.Duration `mapstructure:"nonce_ttl"`
}

// StoreConfig selects the persistence driver: postgres or memory.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
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

// EncryptionConfig selects where the process-wide record key comes from.
// key_source: static (hex key), passphrase (argon2id derived) or vault (KV v2 secret).
type EncryptionConfig struct {
	KeySource  string `mapstructure:"key_source"`
	Key        string `mapstructure:"key"` // 32-byte hex-encoded key
	Passphrase string `mapstructure:"passphrase"`
	Salt       string `mapstructure:"salt"`
	Version    uint8  `mapstructure:"version"` // 1 = AES-256-GCM, 2 = XChaCha20-Poly1305
	VaultPath  string `mapstructure:"vault_path"`
	VaultField string `mapstructure:"vault_field"`
}

type VaultConfig struct {
	Address string `mapstructure:"address"`
	Token   string `mapstructure:"token"`
}

// BlobConfig selects the attachment store: none or s3.
type BlobConfig struct {
	Driver   string `mapstructure:"driver"`
	Bucket   string `mapstructure:"bucket"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
	Prefix   string `mapstructure:"prefix"`
}

// NotificationConfig configures the owner-notification webhook. Empty URL disables it.
type NotificationConfig struct {
	URL     string        `mapstructure:"url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AccessConfig struct {
	PurchaseDuration time.Duration `mapstructure:"purchase_duration"`
	AttemptWindow    time.Duration `mapstructure:"attempt_window"`
	AttemptThreshold int64         `mapstructure:"attempt_threshold"`
	MinConfirmations uint64        `mapstructure:"min_confirmations"`
}

type AuditConfig struct {
	Retention         time.Duration `mapstructure:"retention"`
	BusinessStartHour int           `mapstructure:"business_start_hour"`
	BusinessEndHour   int           `mapstructure:"business_end_hour"`
	Timezone          string        `mapstructure:"timezone"`
}

// Location resolves the configured timezone, falling back to UTC.
func (a AuditConfig) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RetryConfig is the single retry policy for transient store conflicts.
type RetryConfig struct {
	MaxRetries uint64        `mapstructure:"max_retries"`
	Backoff    time.Duration `mapstructure:"backoff"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded first if present.
// Environment variables override file values. Prefix: HRV_ (Health Record Vault).
// Nested keys use underscore: HRV_DATABASE_HOST, HRV_ENCRYPTION_KEY, etc.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 10<<20)
	v.SetDefault("server.rate_limit", 120)
	v.SetDefault("server.nonce_ttl", "5m")
	v.SetDefault("store.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "health_records")
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
	v.SetDefault("jwt.issuer", "health-record-vault")
	v.SetDefault("encryption.key_source", "static")
	v.SetDefault("encryption.key", "")
	v.SetDefault("encryption.passphrase", "")
	v.SetDefault("encryption.salt", "")
	v.SetDefault("encryption.version", 1)
	v.SetDefault("encryption.vault_path", "secret/data/health-record-vault")
	v.SetDefault("encryption.vault_field", "record_key")
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("blob.driver", "none")
	v.SetDefault("blob.bucket", "")
	v.SetDefault("blob.region", "us-east-1")
	v.SetDefault("blob.endpoint", "")
	v.SetDefault("blob.prefix", "records/")
	v.SetDefault("notification.url", "")
	v.SetDefault("notification.secret", "")
	v.SetDefault("notification.timeout", "3s")
	v.SetDefault("access.purchase_duration", "8760h")
	v.SetDefault("access.attempt_window", "15m")
	v.SetDefault("access.attempt_threshold", 3)
	v.SetDefault("access.min_confirmations", 1)
	v.SetDefault("audit.retention", "61320h")
	v.SetDefault("audit.business_start_hour", 6)
	v.SetDefault("audit.business_end_hour", 18)
	v.SetDefault("audit.timezone", "UTC")
	v.SetDefault("retry.max_retries", 3)
	v.SetDefault("retry.backoff", "100ms")
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

	// Environment variables: HRV_DATABASE_HOST -> database.host
	v.SetEnvPrefix("HRV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
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
