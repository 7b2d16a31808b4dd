// Package config loads application settings from defaults, an optional
// YAML file, and SHAPES_* environment variables, in increasing order of
// precedence. Loaded values are validated before they are returned.
package config
