// Package config loads settings from the environment, after merging in an
// optional .env file.
package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration.
type Config struct {
	Port   string `envconfig:"PORT" default:"8080"`
	Secret string `envconfig:"SECRET"`

	// APIURL is where sessions send search and export requests. Empty means
	// this process.
	APIURL        string        `envconfig:"API_URL"`
	ClientTimeout time.Duration `envconfig:"CLIENT_TIMEOUT" default:"0s"`

	SteamAPIKey string        `envconfig:"STEAM_API"`
	SteamURL    string        `envconfig:"STEAM_URL" default:"http://api.steampowered.com"`
	HLTBURL     string        `envconfig:"HLTB_URL" default:"https://howlongtobeat.com"`
	HLTBTimeout time.Duration `envconfig:"HLTB_TIMEOUT" default:"20s"`
	SearchLimit int           `envconfig:"SEARCH_LIMIT" default:"8"`

	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogFile   string `envconfig:"LOG_FILE"`
}

// Load reads the given .env files (".env" when none are named) into the
// environment without overriding variables already set, then processes the
// environment. Missing files are skipped.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.SearchLimit <= 0 {
		return nil, fmt.Errorf("config: SEARCH_LIMIT must be positive, got %d", c.SearchLimit)
	}
	if c.SessionTTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.APIURL == "" {
		c.APIURL = "http://127.0.0.1:" + c.Port
	}
	return &c, nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Key returns the props signing key. Without SECRET a random key is made,
// which invalidates every page on restart.
func (c *Config) Key() ([]byte, bool) {
	if c.Secret != "" {
		return []byte(c.Secret), true
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(fmt.Sprintf("config: failed to generate random key: %v", err))
	}
	return key, false
}
