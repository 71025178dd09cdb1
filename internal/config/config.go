package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	defaultListenAddr         = ":8050"
	defaultGenerationURL      = "https://data.elexon.co.uk/bmrs/api/v1/datasets/FUELINST"
	defaultDemandURL          = "https://data.elexon.co.uk/bmrs/api/v1/datasets/TSDF"
	defaultGenerationFallback = "FUELINST.csv"
	defaultDemandFallback     = "TSDF.json"
	defaultRequestTimeout     = 30 * time.Second
	defaultTimezone           = "Europe/London"
)

type Config struct {
	ListenAddr         string
	GenerationURL      string
	DemandURL          string
	GenerationFallback string
	DemandFallback     string
	RequestTimeout     time.Duration
	Timezone           string
}

func Default() Config {
	return Config{
		ListenAddr:         defaultListenAddr,
		GenerationURL:      defaultGenerationURL,
		DemandURL:          defaultDemandURL,
		GenerationFallback: defaultGenerationFallback,
		DemandFallback:     defaultDemandFallback,
		RequestTimeout:     defaultRequestTimeout,
		Timezone:           defaultTimezone,
	}
}

func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ListenAddr         string `json:"listen_addr"`
		GenerationURL      string `json:"generation_url"`
		DemandURL          string `json:"demand_url"`
		GenerationFallback string `json:"generation_fallback"`
		DemandFallback     string `json:"demand_fallback"`
		RequestTimeout     string `json:"request_timeout"`
		Timezone           string `json:"timezone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if raw.ListenAddr != "" {
		cfg.ListenAddr = raw.ListenAddr
	}
	if raw.GenerationURL != "" {
		cfg.GenerationURL = raw.GenerationURL
	}
	if raw.DemandURL != "" {
		cfg.DemandURL = raw.DemandURL
	}
	if raw.GenerationFallback != "" {
		cfg.GenerationFallback = raw.GenerationFallback
	}
	if raw.DemandFallback != "" {
		cfg.DemandFallback = raw.DemandFallback
	}
	if raw.RequestTimeout != "" {
		timeout, err := time.ParseDuration(raw.RequestTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("request_timeout must be positive")
		}
		cfg.RequestTimeout = timeout
	}
	if raw.Timezone != "" {
		cfg.Timezone = raw.Timezone
	}

	return cfg, nil
}
