package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Port        string
	Env         string
	DBDriver    string
	MongoURI    string
	MongoDB     string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	FrontendURL string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	WorkerCount int
}

// Production 是否為正式環境；正式環境不回傳錯誤堆疊
func (c *Config) Production() bool {
	return c.Env == "production"
}

var dotenvLoad = godotenv.Load

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}

// read 先讀取 .env（不存在時略過），再從環境變數組出設定
func read() (*Config, error) {
	if err := dotenvLoad(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("讀取 .env 失敗: %w", err)
	}

	cfg := &Config{
		Port:          getenv("PORT", "5000"),
		Env:           getenv("APP_ENV", "development"),
		DBDriver:      getenv("DB_DRIVER", DriverMongo),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDB:       getenv("MONGODB_DATABASE", "lacave"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		FrontendURL:   strings.TrimRight(getenv("FRONTEND_URL", "http://localhost:3000"), "/"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		MailFrom:      os.Getenv("MAIL_FROM"),
	}

	var err error
	if cfg.RedisDB, err = getint("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getint("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = getint("WORKER_COUNT", 4); err != nil {
		return nil, err
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}
	return cfg, nil
}

func (c *Config) validateDatabase() error {
	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("環境變數 MONGODB_URI 未設定")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("環境變數 DATABASE_URL 未設定")
		}
	default:
		return fmt.Errorf("無效的 DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// Load API 伺服器需要的完整設定
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if err := cfg.validateDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabase 只檢查資料庫設定，給不需要 JWT 與 Redis 的工具使用
func LoadDatabase() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if err := cfg.validateDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}
