// Package config provides configuration management for mcplint.
//
// Configuration is optional; the tool works with built-in defaults.
// When present, a config.yaml is read from the current directory or
// from the XDG config home (~/.config/mcplint on Linux). Environment
// variables prefixed with MCPLINT_ override file values.
//
// Supported settings:
//
//	version: 1
//	manifest: server.json   # default manifest filename
//	output:
//	  format: text          # text or json
//	  color: true
package config
