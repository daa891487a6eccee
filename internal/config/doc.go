// Package config loads and validates application settings from defaults,
// an optional config.yaml and PLANNER_-prefixed environment variables.
package config
