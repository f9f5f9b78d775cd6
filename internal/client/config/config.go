package config

import "time"

// Config holds runtime settings for the CampusHub client.
//
// Fields:
//   - ProdAPIURL / TestAPIURL: primary backend base URLs. The test URL is
//     used only when the persisted settings enable devMode and testApi.
//   - CuAPIURL: base URL of the secondary campus system.
//   - FeedURL: public news feed (RSS).
//   - DatabaseDSN: sqlite DSN of the local store.
//   - HTTPTimeout: per-request timeout on the shared transport.
type Config struct {
	ProdAPIURL  string
	TestAPIURL  string
	CuAPIURL    string
	FeedURL     string
	DatabaseDSN string
	HTTPTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ProdAPIURL = "https://practice.uffs.edu.br/api/v1/"
	c.TestAPIURL = "https://homologa.practice.uffs.edu.br/api/v1/"
	c.CuAPIURL = "https://cu.uffs.edu.br/api/v1/"
	c.FeedURL = "https://practice.uffs.edu.br/feed.xml"
	c.DatabaseDSN = "campushub.db"
	c.HTTPTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// APIBaseURL picks the backend base URL: the test API requires both the
// developer-mode and test-api settings to be enabled.
func (c *Config) APIBaseURL(devMode, testAPI bool) string {
	if devMode && testAPI {
		return c.TestAPIURL
	}
	return c.ProdAPIURL
}
