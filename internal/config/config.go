package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

const (
	BackupDriverFile     = "file"
	BackupDriverPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Memcached MemcachedConfig
	Backup    BackupConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type MemcachedConfig struct {
	Host         string
	Port         int
	Timeout      time.Duration
	MaxIdleConns int
}

// Addr returns the host:port pair of the memcached server.
func (c MemcachedConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type BackupConfig struct {
	Driver string
	Dir    string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders a postgres connection URL.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 80)
	v.SetDefault("MEMCACHED_IP", "127.0.0.1")
	v.SetDefault("MEMCACHED_PORT", 11211)
	v.SetDefault("MEMCACHED_TIMEOUT", "1s")
	v.SetDefault("MEMCACHED_MAX_IDLE_CONNS", 4)
	v.SetDefault("BACKUP_DRIVER", BackupDriverFile)
	v.SetDefault("BACKUP_DIR", "./backup")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "todo")
	v.SetDefault("DB_PASSWORD", "todo")
	v.SetDefault("DB_NAME", "todo")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	driver := v.GetString("BACKUP_DRIVER")
	if driver != BackupDriverFile && driver != BackupDriverPostgres {
		return nil, fmt.Errorf("unknown backup driver %q", driver)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Memcached: MemcachedConfig{
			Host:         v.GetString("MEMCACHED_IP"),
			Port:         v.GetInt("MEMCACHED_PORT"),
			Timeout:      parseDuration(v.GetString("MEMCACHED_TIMEOUT"), time.Second),
			MaxIdleConns: v.GetInt("MEMCACHED_MAX_IDLE_CONNS"),
		},
		Backup: BackupConfig{
			Driver: driver,
			Dir:    v.GetString("BACKUP_DIR"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DB_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
