// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the phonebook server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint serving /graphql.
//   - DatabaseURI: MongoDB connection string.
//   - DatabaseName: MongoDB database holding the people and users collections.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: token lifetime; zero issues tokens without an expiry claim.
//   - SignupPassword: password hashed into newly created accounts (the schema
//     has no password argument on createUser).
type Config struct {
	EndpointAddr          string
	DatabaseURI           string
	DatabaseName          string
	SecretKey             string
	TokenValidityDuration time.Duration
	SignupPassword        string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseURI = "mongodb://localhost:27017"
	c.DatabaseName = "phonebook"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 0
	c.SignupPassword = "secret"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
