// Package config loads matchbook's startup configuration: the HTTP listen
// address, CORS origin, default scale, and the instrument codes seeded into
// the Registry at boot (§6 Bootstrap).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is matchbook's top-level configuration, loaded from YAML and then
// overridden by environment variables — the same two-step pattern
// b25/services/order-execution's cmd/server/main.go uses for loadConfig.
type Config struct {
	Server struct {
		Address    string `yaml:"address"`
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`

	Engine struct {
		BaseScale   int32    `yaml:"base_scale"`
		QuoteScale  int32    `yaml:"quote_scale"`
		Instruments []string `yaml:"instruments"`
	} `yaml:"engine"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Default returns the configuration the §6 Bootstrap section describes:
// listening on 127.0.0.1:3030, CORS restricted to the null origin, scale
// 8/8, and the four seed instrument codes.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Address = "127.0.0.1:3030"
	cfg.Server.CORSOrigin = "null"
	cfg.Engine.BaseScale = 8
	cfg.Engine.QuoteScale = 8
	cfg.Engine.Instruments = []string{"cet_eos", "otc_eos", "iq_eos", "pub_eos"}
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	return cfg
}

// Load reads path as YAML over the Default configuration. A missing file is
// not an error: Default() alone satisfies the §6 Bootstrap contract.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides fields from MATCHBOOK_* environment variables, mirroring
// the override-after-load step in b25's order-execution loadConfig.
func applyEnv(cfg *Config) {
	if v := os.Getenv("MATCHBOOK_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("MATCHBOOK_CORS_ORIGIN"); v != "" {
		cfg.Server.CORSOrigin = v
	}
	if v := os.Getenv("MATCHBOOK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
