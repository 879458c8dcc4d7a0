package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requiredField pairs a config value with the name operators know it by
type requiredField struct {
	name  string
	value func(*Config) string
}

var (
	dbFields = []requiredField{
		{"DB_HOST", func(c *Config) string { return c.DBHost }},
		{"DB_PORT", func(c *Config) string { return c.DBPort }},
		{"DB_NAME", func(c *Config) string { return c.DBName }},
		{"DB_USER", func(c *Config) string { return c.DBUser }},
		{"DB_PASSWORD", func(c *Config) string { return c.DBPassword }},
	}
	jwtField   = requiredField{"JWT_SECRET", func(c *Config) string { return c.JWTSecret }}
	redisField = requiredField{"REDIS_URL or REDIS_HOST", func(c *Config) string {
		if c.RedisURL != "" {
			return c.RedisURL
		}
		return c.RedisHost
	}}

	// Environment-specific requirements
	requirements = map[Environment][]requiredField{
		Development: append(append([]requiredField{}, dbFields...), jwtField),
		Test:        append(append([]requiredField{}, dbFields...), jwtField),
		CI:          append(append([]requiredField{}, dbFields...), jwtField, redisField),
		Production:  append(append([]requiredField{}, dbFields...), jwtField, redisField),
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var problems []string
	for _, f := range requirements[env] {
		if f.value(cfg) == "" {
			problems = append(problems, ValidationError{Field: f.name, Message: "is required"}.Error())
		}
	}

	if cfg.ShoppingWorkers < 0 {
		problems = append(problems, ValidationError{Field: "SHOPPING_WORKERS", Message: "must not be negative"}.Error())
	}
	if cfg.PriceCacheTTL < 0 {
		problems = append(problems, ValidationError{Field: "PRICE_CACHE_TTL", Message: "must not be negative"}.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed (%s):\n%s", env, strings.Join(problems, "\n"))
	}

	return nil
}
