// Package config loads and validates application configuration from
// environment variables and an optional YAML file. Environment
// variables use the MUFRADAT_ prefix and take precedence.
package config
