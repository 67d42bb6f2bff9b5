package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.DatabaseURI, "mongodb://localhost:27017")
	assert.Equal(t, c.DatabaseName, "phonebook")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.TokenValidityDuration, time.Duration(0))
	assert.Equal(t, c.SignupPassword, "secret")
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.DatabaseURI, "mongodb://localhost:27017")
	assert.Equal(t, c.DatabaseName, "phonebook")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.SignupPassword, "secret")
}
