package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultMetricsAddr = "127.0.0.1:9137"

const configFilePath = "poserv.json"

type LogConfig struct {
	Path    string
	Level   string
	Console bool
}

type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// main configuration struct for the console host; the protocol core itself
// takes no configuration at all.
type Config struct {
	Log     LogConfig
	Metrics MetricsConfig
	Origin  string // default dapp origin tag for service distributions
	VERSION string // version field
	VER     int    // other version field
}

// GenerateConfig loads poserv.json, writing defaults first if it is missing.
func GenerateConfig() *Config {
	cfg := &Config{}
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		cfg = &Config{
			Log: LogConfig{
				Path:    "poserv.log",
				Level:   "info",
				Console: true,
			},
			Metrics: MetricsConfig{
				Enabled: false,
				Addr:    DefaultMetricsAddr,
			},
			Origin:  "generic",
			VERSION: "PSP-1.0",
			VER:     1,
		}
		cfg.WriteConfigToFile()
	} else {
		cfg, err = ReadConfig(configFilePath)
		if err != nil {
			panic(err)
		}
	}
	return cfg
}

// SetMetricsAddr overrides the metrics listen address; empty keeps default.
func (cfg *Config) SetMetricsAddr(addr string) {
	if addr == "" {
		return
	}
	cfg.Metrics.Enabled = true
	cfg.Metrics.Addr = addr
	cfg.WriteConfigToFile()
}

// SetOrigin overrides the default origin tag; empty keeps current.
func (cfg *Config) SetOrigin(origin string) {
	if origin == "" {
		return
	}
	cfg.Origin = origin
	cfg.WriteConfigToFile()
}

func (cfg *Config) GetVersion() string {
	return fmt.Sprintf("%s-%d_VERSION", cfg.VERSION, cfg.VER)
}

func (cfg *Config) WriteConfigToFile() {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Printf("Error while write cfg: %s\r\n", err)
		return
	}
	if err := os.WriteFile(configFilePath, data, 0o644); err != nil {
		fmt.Printf("Error while write cfg: %s\r\n", err)
	}
}

func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
