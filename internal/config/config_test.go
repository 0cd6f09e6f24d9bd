package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func setBase(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"PORT": "", "APP_ENV": "", "DB_DRIVER": "", "MONGODB_DATABASE": "",
		"MONGODB_URI": "mongodb://localhost:27017", "DATABASE_URL": "",
		"REDIS_ADDR": "localhost:6379", "REDIS_PASSWORD": "", "REDIS_DB": "",
		"JWT_SECRET": "secret", "FRONTEND_URL": "", "SMTP_PORT": "", "WORKER_COUNT": "",
	} {
		t.Setenv(k, v)
	}
	dotenvLoad = func(...string) error { return &fs.PathError{Op: "open", Path: ".env", Err: fs.ErrNotExist} }
	t.Cleanup(func() { dotenvLoad = godotenv.Load })
}

func TestLoadDefaults(t *testing.T) {
	setBase(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.False(t, cfg.Production())
	require.Equal(t, DriverMongo, cfg.DBDriver)
	require.Equal(t, "lacave", cfg.MongoDB)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, 4, cfg.WorkerCount)
	require.Equal(t, "http://localhost:3000", cfg.FrontendURL)
}

func TestLoadOverrides(t *testing.T) {
	setBase(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("FRONTEND_URL", "https://lacave.example/")
	t.Setenv("WORKER_COUNT", "8")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Production())
	require.Equal(t, DriverPostgres, cfg.DBDriver)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "https://lacave.example", cfg.FrontendURL)
	require.Equal(t, 8, cfg.WorkerCount)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"no secret":        {"JWT_SECRET": ""},
		"no redis":         {"REDIS_ADDR": ""},
		"no mongo uri":     {"MONGODB_URI": ""},
		"no postgres url":  {"DB_DRIVER": "postgres"},
		"unknown driver":   {"DB_DRIVER": "sqlite"},
		"bad redis db":     {"REDIS_DB": "x"},
		"bad smtp port":    {"SMTP_PORT": "x"},
		"bad worker count": {"WORKER_COUNT": "0"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			setBase(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoadDotenvError(t *testing.T) {
	setBase(t)
	dotenvLoad = func(...string) error { return errors.New("bad line") }
	_, err := Load()
	require.Error(t, err)
}

func TestLoadDatabase(t *testing.T) {
	setBase(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("REDIS_ADDR", "")
	cfg, err := LoadDatabase()
	require.NoError(t, err)
	require.Equal(t, DriverMongo, cfg.DBDriver)

	t.Setenv("MONGODB_URI", "")
	_, err = LoadDatabase()
	require.Error(t, err)
}
