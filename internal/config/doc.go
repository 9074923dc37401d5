// Package config provides the configuration of a pdfproof run.
//
// Values are resolved in this order, later sources winning:
// built-in defaults, the PDFPROOF_API_KEY environment variable (also read
// from a .env file), the YAML configuration file and command line flags.
package config
