package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvTestDBURL, "")
	assert.Empty(t, GetTestDatabaseURL())
	assert.False(t, IsIntegrationTestEnvironment())

	t.Setenv(EnvTestDBURL, "postgres://test@localhost/flashdeck_test")
	assert.Equal(t, "postgres://test@localhost/flashdeck_test", GetTestDatabaseURL())
	assert.True(t, IsIntegrationTestEnvironment())

	t.Setenv(EnvDatabaseURL, "postgres://ci@db/flashdeck")
	assert.Equal(t, "postgres://ci@db/flashdeck", GetTestDatabaseURL())
}

func TestOpenSkipsWithoutDatabase(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")
	t.Setenv(EnvTestDBURL, "")

	reached := false
	t.Run("open", func(t *testing.T) {
		Open(t)
		reached = true
	})
	assert.False(t, reached)
}
