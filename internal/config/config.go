// Package config loads cqlwarm settings from the environment and an
// optional .env file. Command line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gocql/gocql"
	"github.com/joho/godotenv"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/infrastructure/connection"
	"github.com/trigg3rX/triggerx-cql/pkg/env"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

type Config struct {
	devMode bool

	// ScyllaDB hosts (host:port) and session defaults
	databaseHosts       []string
	keyspace            string
	consistency         string
	timeout             time.Duration
	healthCheckInterval time.Duration
	defaultIdempotence  bool

	// Warm-up
	warmupFile        string
	warmupParallelism int

	// HTTP listener for /metrics, /health and /cache
	listenAddr string

	logDir string
}

// Load reads .env files (missing files are ignored) and the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		devMode:             env.GetEnvBool("DEV_MODE", false),
		databaseHosts:       env.GetEnvStringSlice("DATABASE_HOSTS", []string{"localhost:9042"}),
		keyspace:            env.GetEnvString("DATABASE_KEYSPACE", "triggerx"),
		consistency:         env.GetEnvString("DATABASE_CONSISTENCY", "QUORUM"),
		timeout:             env.GetEnvDuration("DATABASE_TIMEOUT", 30*time.Second),
		healthCheckInterval: env.GetEnvDuration("DATABASE_HEALTH_CHECK_INTERVAL", 15*time.Second),
		defaultIdempotence:  env.GetEnvBool("DATABASE_DEFAULT_IDEMPOTENCE", true),
		warmupFile:          env.GetEnvString("WARMUP_FILE", ""),
		warmupParallelism:   env.GetEnvInt("WARMUP_PARALLELISM", 8),
		listenAddr:          env.GetEnvString("LISTEN_ADDR", ":9100"),
		logDir:              env.GetEnvString("LOG_DIR", "data"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.databaseHosts) == 0 {
		return fmt.Errorf("at least one database host is required")
	}
	for _, h := range c.databaseHosts {
		if !env.IsValidHostPort(h) {
			return fmt.Errorf("invalid database host %q, want host:port", h)
		}
	}
	if !env.IsValidKeyspace(c.keyspace) {
		return fmt.Errorf("invalid keyspace %q", c.keyspace)
	}
	if _, err := types.ParseConsistency(c.consistency); err != nil {
		return err
	}
	if c.timeout <= 0 {
		return fmt.Errorf("database timeout must be positive, got: %v", c.timeout)
	}
	if c.warmupParallelism < 1 {
		return fmt.Errorf("warm-up parallelism must be at least 1, got: %d", c.warmupParallelism)
	}
	return nil
}

// ConnectionConfig builds the datastore connection settings.
func (c *Config) ConnectionConfig() *connection.Config {
	consistency, err := types.ParseConsistency(c.consistency)
	if err != nil {
		consistency = gocql.Quorum
	}
	cfg := connection.NewConfig("", "").
		WithHosts(append([]string(nil), c.databaseHosts...)).
		WithKeyspace(c.keyspace).
		WithTimeout(c.timeout).
		WithConsistency(consistency).
		WithDefaultIdempotence(c.defaultIdempotence).
		WithHealthCheckInterval(c.healthCheckInterval)
	return cfg
}

func (c *Config) IsDevMode() bool {
	return c.devMode
}

func (c *Config) GetDatabaseHosts() []string {
	return append([]string(nil), c.databaseHosts...)
}

func (c *Config) GetKeyspace() string {
	return c.keyspace
}

func (c *Config) GetWarmupFile() string {
	return c.warmupFile
}

func (c *Config) GetWarmupParallelism() int {
	return c.warmupParallelism
}

func (c *Config) GetListenAddr() string {
	return c.listenAddr
}

func (c *Config) GetLogDir() string {
	return c.logDir
}

func (c *Config) SetDatabaseHosts(hosts []string) {
	c.databaseHosts = hosts
}

func (c *Config) SetKeyspace(keyspace string) {
	c.keyspace = keyspace
}

func (c *Config) SetConsistency(consistency string) {
	c.consistency = consistency
}

func (c *Config) SetWarmupFile(path string) {
	c.warmupFile = path
}

func (c *Config) SetWarmupParallelism(n int) {
	c.warmupParallelism = n
}

func (c *Config) SetListenAddr(addr string) {
	c.listenAddr = addr
}

func (c *Config) SetDevMode(dev bool) {
	c.devMode = dev
}
