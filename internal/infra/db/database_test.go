package db

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/config"
)

func TestNewConnection_SQLiteMigrates(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          "file::memory:",
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Migrate())
	assert.True(t, database.HealthCheck())
	for _, table := range []string{"clients", "proposals", "settings"} {
		assert.True(t, database.DB().Migrator().HasTable(table), table)
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient(&config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.Nil(t, RedisHealthCheck(nil))

	mr := miniredis.RunT(t)
	client, err = NewRedisClient(&config.RedisConfig{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.True(t, RedisHealthCheck(client)())

	_, err = NewRedisClient(&config.RedisConfig{URL: "::not a url"})
	assert.Error(t, err)
}
