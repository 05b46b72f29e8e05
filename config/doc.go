// Package config loads gridsearch configuration from a .env file, an optional YAML
// config file and GRIDSEARCH_* environment variables, and validates it.
package config
