// Package config loads dirsh configuration.
//
// Configuration is read from a TOML file under the XDG config directory
// (dirsh/config.toml), then overridden by DIRSH_* environment variables.
// A missing config file is not an error; defaults apply.
package config
