// Package config loads the savedit configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// three sources with a fixed precedence (env > flags > file) and
// validating the result before the server starts.
package config
