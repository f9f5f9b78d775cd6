// Package config loads runtime configuration for the CampusHub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the primary backend
//	-u string   base URL of the campus system
//	-d string   sqlite DSN of the local store
//	-t int      HTTP timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "prod_api_url": "https://practice.uffs.edu.br/api/v1/",
//	  "cu_api_url": "https://cu.uffs.edu.br/api/v1/",
//	  "http_timeout": "15s"
//	}
//
// Note: endpoint selection between prod and test API happens at runtime from
// the persisted user settings (devMode + testApi), not here; the config only
// carries both URLs.
package config
