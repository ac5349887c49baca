// Package config gives read-only access to a TOML configuration file.
//
// The file is parsed once by Load into a tree of tables, arrays and scalars
// and is never written back. Values are addressed by a KeyPath:
//
//	cfg, err := config.Load("")                       // ./config.toml
//	port, err := cfg.Lookup("server", "port")         // KEY_NOT_FOUND on a miss
//	host := cfg.LookupOr("localhost", "server", "host")
//	limits, err := cfg.GetMapping([]config.Kind{config.KindInteger},
//	    config.Keys("limits"), config.Strict)
//
// Misses are controlled by a Fallback. Strict turns a miss into an error;
// Or(v) returns v instead, and Or(nil) is distinct from Strict.
//
// Errors carry codes from pkg/errors: CONFIG_NOT_FOUND, CONFIG_FORMAT,
// KEY_NOT_FOUND and TYPE_MISMATCH.
package config
