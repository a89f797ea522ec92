// Package config defines the CLI configuration for admintok.
//
// Configuration is assembled from three sources with increasing
// priority: built-in defaults, an optional YAML file, and environment
// variables (ADMINTOK_ prefix). The admin secret itself is additionally
// read from ADMIN_SECRET, the variable name the paired server documents
// in its .env, and an optional dotenv file can be preloaded so operator
// and server read the identical value.
package config
