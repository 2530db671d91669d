package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/danmuck/imapenable/internal/protocol/atom"
	"github.com/danmuck/imapenable/internal/protocol/command"
)

const EnvPrefix = "IMAPENABLE_"

// Client holds the defaults enablectl uses when building ENABLE commands.
type Client struct {
	Tag          string   `toml:"tag" env:"TAG"`
	Capabilities []string `toml:"capabilities" env:"CAPABILITIES" envSeparator:","`
	Strict       bool     `toml:"strict" env:"STRICT"`
}

func DefaultClient() Client {
	return Client{
		Tag:          "A001",
		Capabilities: []string{"UTF8=ACCEPT"},
	}
}

// LoadClient overlays the TOML file at path onto the defaults, then applies
// IMAPENABLE_* environment overrides. An empty path skips the file.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	if strings.TrimSpace(path) != "" {
		var raw Client
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Client{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Client{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
		}
		if meta.IsDefined("tag") {
			cfg.Tag = strings.TrimSpace(raw.Tag)
		}
		if meta.IsDefined("capabilities") {
			cfg.Capabilities = normalizeCapabilities(raw.Capabilities)
		}
		if meta.IsDefined("strict") {
			cfg.Strict = raw.Strict
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Client{}, fmt.Errorf("config env failed: %w", err)
	}
	cfg.Capabilities = normalizeCapabilities(cfg.Capabilities)

	if err := ValidateClient(cfg); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

// ValidateClient checks tag and capability syntax. Strict mode is applied by
// callers to the capabilities they actually send.
func ValidateClient(cfg Client) error {
	if _, err := command.NewTag(cfg.Tag); err != nil {
		return fmt.Errorf("client config tag %q: %w", cfg.Tag, err)
	}
	for i, raw := range cfg.Capabilities {
		if _, err := atom.New(raw); err != nil {
			return fmt.Errorf("capabilities[%d] invalid: %w", i, err)
		}
	}
	return nil
}

func normalizeCapabilities(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
