package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/indigo-web/reply/http/mime"
)

type (
	Response struct {
		// ContentType is used unless explicitly set by a handler.
		ContentType mime.MIME `toml:"content_type"`
		// Connection is the default Connection header value.
		Connection string `toml:"connection"`
		// CacheControl is the default Cache-Control header value.
		CacheControl string `toml:"cache_control"`
	}

	File struct {
		// UnknownMIME is the Content-Type of a file, whose extension couldn't be resolved
		// into any MIME.
		UnknownMIME mime.MIME `toml:"unknown_mime"`
	}

	Headers struct {
		// Prealloc is the initial capacity of the raw headers storage.
		Prealloc int `toml:"prealloc"`
		// CookiesPrealloc is the initial capacity of the response cookies list.
		CookiesPrealloc int `toml:"cookies_prealloc"`
	}
)

// Config holds defaults the response is initialized and reset with, and pre-allocation sizes.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Response Response `toml:"response"`
	File     File     `toml:"file"`
	Headers  Headers  `toml:"headers"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Response: Response{
			ContentType:  mime.Plain,
			Connection:   "close",
			CacheControl: "max-age=0",
		},
		File: File{
			UnknownMIME: mime.Unknown,
		},
		Headers: Headers{
			Prealloc:        4,
			CookiesPrealloc: 2,
		},
	}
}

// Read decodes a TOML document on top of the defaults, so omitted keys keep default values.
// Unknown keys are rejected.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Load reads the config from a TOML file.
func Load(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Read(bytes.NewReader(contents))
}
