package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/reservation-api/internal/timezone"
)

type Config struct {
	DataPath   string
	ServerPort string

	AdminKey       string
	AdminKeyBcrypt string

	StoreSync    bool
	MaxBodyBytes int64

	RateLimitPerMinute int
	RedisURL           string

	// TrustedProxies lists the IPs or CIDRs allowed to set X-Forwarded-For.
	// Empty means the peer address is always the client address.
	TrustedProxies []string

	DatabaseURL string

	Timezone string

	Backup BackupConfig
}

type BackupConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether enough settings are present to upload backups.
func (b BackupConfig) Enabled() bool {
	return b.Bucket != "" && b.Region != ""
}

// Load reads the configuration from the environment. Values from a .env file
// (or the files named in ENV_FILE, comma separated) are loaded first without
// overriding variables that are already set.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		DataPath:       getEnv("DATA_PATH", "/var/data/reservations.csv"),
		ServerPort:     getEnv("PORT", "8080"),
		AdminKey:       os.Getenv("ADMIN_KEY"),
		AdminKeyBcrypt: os.Getenv("ADMIN_KEY_BCRYPT"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Timezone:       getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
		Backup: BackupConfig{
			Bucket:    os.Getenv("BACKUP_S3_BUCKET"),
			Region:    os.Getenv("BACKUP_S3_REGION"),
			Endpoint:  os.Getenv("BACKUP_S3_ENDPOINT"),
			AccessKey: os.Getenv("BACKUP_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("BACKUP_S3_SECRET_KEY"),
			Prefix:    getEnv("BACKUP_S3_PREFIX", "reservations/"),
		},
	}

	if p, err := strconv.Atoi(cfg.ServerPort); err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("PORT must be a valid TCP port (got %q)", cfg.ServerPort)
	}

	var err error
	if cfg.StoreSync, err = getBool("STORE_SYNC", false); err != nil {
		return nil, err
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 64<<10); err != nil {
		return nil, err
	}
	limit, err := getInt64("RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitPerMinute = int(limit)

	if cfg.TrustedProxies, err = getProxies("TRUSTED_PROXIES"); err != nil {
		return nil, err
	}
	if !timezone.IsValid(cfg.Timezone) {
		return nil, fmt.Errorf("APP_TIMEZONE must be an IANA zone name (got %q)", cfg.Timezone)
	}

	return cfg, nil
}

func loadDotEnv() {
	files := []string{".env"}
	if v := os.Getenv("ENV_FILE"); v != "" {
		files = strings.Split(v, ",")
	}
	for _, f := range files {
		// a missing file is fine: the environment alone is a valid configuration
		_ = godotenv.Load(strings.TrimSpace(f))
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q)", key, v)
	}
	return b, nil
}

func getInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer (got %q)", key, v)
	}
	return n, nil
}

func getProxies(key string) ([]string, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return nil, fmt.Errorf("%s entries must be IPs or CIDRs (got %q)", key, p)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// AdminEnabled reports whether any admin secret is configured.
func (c *Config) AdminEnabled() bool {
	return c.AdminKey != "" || c.AdminKeyBcrypt != ""
}
