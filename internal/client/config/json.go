package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/murilodk/campushub/internal/flagx"
	"github.com/murilodk/campushub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	ProdAPIURL  string         `json:"prod_api_url"`
	TestAPIURL  string         `json:"test_api_url"`
	CuAPIURL    string         `json:"cu_api_url"`
	FeedURL     string         `json:"feed_url"`
	DatabaseDSN string         `json:"database_dsn"`
	HTTPTimeout timex.Duration `json:"http_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Empty JSON fields leave the corresponding Config value untouched, so a
// partial file only overrides what it names. Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ProdAPIURL != "" {
		cfg.ProdAPIURL = jc.ProdAPIURL
	}
	if jc.TestAPIURL != "" {
		cfg.TestAPIURL = jc.TestAPIURL
	}
	if jc.CuAPIURL != "" {
		cfg.CuAPIURL = jc.CuAPIURL
	}
	if jc.FeedURL != "" {
		cfg.FeedURL = jc.FeedURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
}
