package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/titanous/json5"
)

type Farnell struct {
	APIKey   string `json:"api_key"  env:"FARNELL_API_KEY"`
	Store    string `json:"store"    env:"FARNELL_STORE"`
	Endpoint string `json:"endpoint" env:"FARNELL_ENDPOINT"`
	Results  int    `json:"results"`
}

type Mouser struct {
	APIKey       string `json:"api_key"       env:"MOUSER_API_KEY"`
	Endpoint     string `json:"endpoint"      env:"MOUSER_ENDPOINT"`
	CurrencyCode string `json:"currency_code" env:"MOUSER_CURRENCY_CODE"`
	Records      int    `json:"records"`
}

type Digikey struct {
	ClientID       string `json:"client_id"       env:"DIGIKEY_CLIENT_ID"`
	ClientSecret   string `json:"client_secret"   env:"DIGIKEY_CLIENT_SECRET"`
	Sandbox        bool   `json:"sandbox"         env:"DIGIKEY_CLIENT_SANDBOX"`
	BaseURL        string `json:"base_url"        env:"DIGIKEY_BASE_URL"`
	LocaleSite     string `json:"locale_site"`
	LocaleLanguage string `json:"locale_language"`
	LocaleCurrency string `json:"locale_currency"`
}

type RSComponents struct {
	Enabled    bool   `json:"enabled"     env:"RS_ENABLED"`
	BaseURL    string `json:"base_url"    env:"RS_BASE_URL"`
	UnitMarker string `json:"unit_marker"`
}

type Run struct {
	RequestTimeoutSec int    `json:"request_timeout_sec" env:"PARTPRICE_REQUEST_TIMEOUT_SEC"`
	Parallel          int    `json:"parallel"            env:"PARTPRICE_PARALLEL"`
	CacheTTLSec       int    `json:"cache_ttl_sec"       env:"PARTPRICE_CACHE_TTL_SEC"`
	LogLevel          string `json:"log_level"           env:"PARTPRICE_LOG_LEVEL"`
}

type Config struct {
	Farnell      Farnell      `json:"farnell"`
	Mouser       Mouser       `json:"mouser"`
	Digikey      Digikey      `json:"digikey"`
	RSComponents RSComponents `json:"rscomponents"`
	Run          Run          `json:"run"`
}

func Default() Config {
	return Config{
		Farnell: Farnell{
			Store:    "dk.farnell.com",
			Endpoint: "https://api.element14.com",
			Results:  10,
		},
		Mouser: Mouser{
			Endpoint:     "https://api.mouser.com",
			CurrencyCode: "DKK",
			Records:      10,
		},
		Digikey: Digikey{
			LocaleSite:     "DK",
			LocaleLanguage: "da",
			LocaleCurrency: "DKK",
		},
		RSComponents: RSComponents{
			Enabled:    true,
			BaseURL:    "https://dk.rs-online.com",
			UnitMarker: "Leveres Pr. stk.",
		},
		Run: Run{
			RequestTimeoutSec: 20,
			Parallel:          1,
			LogLevel:          "info",
		},
	}
}

// Load reads the JSON5 config at path on top of Default(). A sibling
// <name>.local.<ext> file, when present, overrides non-zero fields. Finally
// variables from the process environment, or from a .env file next to path,
// override single fields. The process environment itself is left untouched.
//
// A missing main file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json5.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	local := localPath(path)
	lb, err := os.ReadFile(local)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		var override Config
		if err := json5.Unmarshal(lb, &override); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", local, err)
		}
		if err := mergo.Merge(&cfg, override, mergo.WithOverride); err != nil {
			return cfg, fmt.Errorf("merge config %s: %w", local, err)
		}
		slog.Debug("merged local config overrides", slog.String("local", local))
	}

	environ, err := environment(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("env.Parse: %w", err)
	}

	return cfg, nil
}

// localPath turns dir/api_keys.json5 into dir/api_keys.local.json5.
func localPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

// environment returns the process environment layered over dotenv.
func environment(dotenv string) (map[string]string, error) {
	out, err := godotenv.Read(dotenv)
	switch {
	case errors.Is(err, os.ErrNotExist):
		out = map[string]string{}
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", dotenv, err)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out, nil
}
