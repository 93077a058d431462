package connection

import (
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/triggerx-cql/pkg/retry"
)

func validConfig() *Config {
	return &Config{
		Hosts:               []string{"localhost:9042"},
		Keyspace:            "test_keyspace",
		Timeout:             time.Second * 30,
		ConnectWait:         time.Second * 10,
		Retries:             5,
		ProtoVersion:        4,
		MaxPreparedStmts:    1000,
		HealthCheckInterval: time.Second * 15,
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	config := NewConfig("localhost", "9042")

	assert.Equal(t, []string{"localhost:9042"}, config.Hosts)
	assert.Equal(t, "triggerx", config.Keyspace)
	assert.Equal(t, time.Second*30, config.Timeout)
	assert.Equal(t, 5, config.Retries)
	assert.Equal(t, time.Second*10, config.ConnectWait)
	assert.Equal(t, gocql.Quorum, config.Consistency)
	assert.Equal(t, time.Second*15, config.HealthCheckInterval)
	assert.Equal(t, 4, config.ProtoVersion)
	assert.Equal(t, 15*time.Second, config.SocketKeepalive)
	assert.Equal(t, 1000, config.MaxPreparedStmts)
	assert.True(t, config.DefaultIdempotence)
	assert.NotNil(t, config.RetryConfig)
	assert.NoError(t, config.Validate())
}

func TestConfig_MethodChaining(t *testing.T) {
	config := &Config{}
	retryConfig := retry.DefaultRetryConfig()

	result := config.
		WithHosts([]string{"host1:9042", "host2:9042"}).
		WithKeyspace("app").
		WithTimeout(time.Minute).
		WithRetries(10).
		WithConsistency(gocql.LocalQuorum).
		WithDefaultIdempotence(false).
		WithRetryConfig(retryConfig).
		WithHealthCheckInterval(time.Second * 30)

	assert.Same(t, config, result)
	assert.Equal(t, []string{"host1:9042", "host2:9042"}, config.Hosts)
	assert.Equal(t, "app", config.Keyspace)
	assert.Equal(t, time.Minute, config.Timeout)
	assert.Equal(t, 10, config.Retries)
	assert.Equal(t, gocql.LocalQuorum, config.Consistency)
	assert.False(t, config.DefaultIdempotence)
	assert.Same(t, retryConfig, config.RetryConfig)
	assert.Equal(t, time.Second*30, config.HealthCheckInterval)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "health checker disabled", mutate: func(c *Config) { c.HealthCheckInterval = 0 }},
		{name: "empty hosts", mutate: func(c *Config) { c.Hosts = nil }, wantErr: "at least one host must be specified"},
		{name: "empty keyspace", mutate: func(c *Config) { c.Keyspace = "" }, wantErr: "keyspace cannot be empty"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: "timeout must be positive"},
		{name: "negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: "timeout must be positive"},
		{name: "zero connect wait", mutate: func(c *Config) { c.ConnectWait = 0 }, wantErr: "connect wait must be positive"},
		{name: "negative retries", mutate: func(c *Config) { c.Retries = -1 }, wantErr: "retries cannot be negative"},
		{name: "protocol too new", mutate: func(c *Config) { c.ProtoVersion = 5 }, wantErr: "protocol version must be between 1 and 4"},
		{name: "protocol unset", mutate: func(c *Config) { c.ProtoVersion = 0 }, wantErr: "protocol version must be between 1 and 4"},
		{name: "negative max prepared", mutate: func(c *Config) { c.MaxPreparedStmts = -1 }, wantErr: "max prepared statements cannot be negative"},
		{name: "negative health interval", mutate: func(c *Config) { c.HealthCheckInterval = -time.Second }, wantErr: "health check interval cannot be negative"},
		{
			name:    "bad retry config",
			mutate:  func(c *Config) { c.RetryConfig = &retry.RetryConfig{MaxRetries: 0} },
			wantErr: "invalid retry config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	original := NewConfig("host1", "9042").WithKeyspace("app")

	cloned := original.Clone()

	assert.NotSame(t, original, cloned)
	assert.NotSame(t, original.RetryConfig, cloned.RetryConfig)
	assert.Equal(t, original.Hosts, cloned.Hosts)
	assert.Equal(t, original.Keyspace, cloned.Keyspace)
	assert.Equal(t, original.DefaultIdempotence, cloned.DefaultIdempotence)
	assert.Equal(t, original.RetryConfig.MaxRetries, cloned.RetryConfig.MaxRetries)

	original.Hosts[0] = "modified:9042"
	original.Keyspace = "modified"
	original.RetryConfig.MaxRetries = 99

	assert.Equal(t, "host1:9042", cloned.Hosts[0])
	assert.Equal(t, "app", cloned.Keyspace)
	assert.Equal(t, 5, cloned.RetryConfig.MaxRetries)
}

func TestConfig_Clone_NilRetryConfig(t *testing.T) {
	cloned := validConfig().Clone()

	assert.Nil(t, cloned.RetryConfig)
}

func TestConfig_ClusterConfig(t *testing.T) {
	config := NewConfig("localhost", "9042").
		WithConsistency(gocql.LocalOne).
		WithDefaultIdempotence(false)

	cluster := config.clusterConfig()

	assert.Equal(t, []string{"localhost:9042"}, cluster.Hosts)
	assert.Equal(t, "triggerx", cluster.Keyspace)
	assert.Equal(t, gocql.LocalOne, cluster.Consistency)
	assert.Equal(t, 4, cluster.ProtoVersion)
	assert.Equal(t, 1000, cluster.MaxPreparedStmts)
	assert.False(t, cluster.DefaultIdempotence)
	assert.Equal(t, &gocql.SimpleRetryPolicy{NumRetries: 5}, cluster.RetryPolicy)
}
