// Package config loads ruleflow's configuration. Values are layered in
// order: the embedded defaults, the user's config.toml, RULEFLOW_*
// environment variables and finally command-line overrides.
package config
