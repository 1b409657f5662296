// Package config loads the globedpkt configuration: a TOML file, an optional
// .env overlay and GLOBED_* environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	globed "github.com/Termantita/globed2"
	"github.com/Termantita/globed2/ext"
	"github.com/Termantita/globed2/internal/logging"
	"github.com/Termantita/globed2/packet"
)

const (
	DefaultConfigFile = "globed.toml"
	DefaultEnvFile    = ".env"
)

type Config struct {
	Log   logging.Config `toml:"log"`
	Codec CodecConfig    `toml:"codec"`
	// Mods declares the extension fields both peers have registered, in
	// registration order.
	Mods []Mod `toml:"mods"`
}

type CodecConfig struct {
	MaxPacketLen int `toml:"max_packet_len"`
}

// Mod is one manifest entry: the fields a mod attaches to packets of a
// single category.
type Mod struct {
	ID       ext.ModID       `toml:"id"`
	Category packet.Category `toml:"category"`
	Fields   []Field         `toml:"fields"`
}

// Field is a declared extension value. Value is what gets sent when no other
// value is supplied.
type Field struct {
	ext.FieldMeta
	Value any `toml:"value"`
}

func Default() *Config {
	return &Config{
		Log: logging.DefaultConfig(),
		Codec: CodecConfig{
			MaxPacketLen: globed.DefaultMaxPacketLen,
		},
	}
}

// Load reads path over the defaults. A missing file is only an error when
// required is set. Environment overrides are applied last.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", DefaultEnvFile, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("GLOBED_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("GLOBED_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := os.LookupEnv("GLOBED_NO_FILE_LOG"); ok && v != "" && v != "0" {
		c.Log.File = ""
	}
	if v, ok := os.LookupEnv("GLOBED_MAX_PACKET_LEN"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GLOBED_MAX_PACKET_LEN: %w", err)
		}
		c.Codec.MaxPacketLen = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Codec.MaxPacketLen <= 0 {
		return fmt.Errorf("codec.max_packet_len must be positive, got %d", c.Codec.MaxPacketLen)
	}

	var errs []string
	for i, m := range c.Mods {
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("mods[%d]: missing id", i))
		}
		if m.Category == packet.CategoryNone {
			errs = append(errs, fmt.Sprintf("mods[%d] (%s): category None cannot carry fields", i, m.ID))
		}
		if len(m.Fields) == 0 {
			errs = append(errs, fmt.Sprintf("mods[%d] (%s): no fields", i, m.ID))
		}
		for j, f := range m.Fields {
			if f.Name == "" {
				errs = append(errs, fmt.Sprintf("mods[%d].fields[%d]: missing name", i, j))
			}
			if _, err := f.Type.Codec(); err != nil {
				errs = append(errs, fmt.Sprintf("mods[%d].fields[%d] (%s): %v", i, j, f.Name, err))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Metas returns the declared layout of m's fields.
func (m Mod) Metas() []ext.FieldMeta {
	metas := make([]ext.FieldMeta, len(m.Fields))
	for i, f := range m.Fields {
		metas[i] = f.FieldMeta
	}
	return metas
}

// Values returns the configured value of each of m's fields.
func (m Mod) Values() []any {
	vs := make([]any, len(m.Fields))
	for i, f := range m.Fields {
		vs[i] = f.Value
	}
	return vs
}
