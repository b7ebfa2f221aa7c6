package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Contact ContactConfig
	Track   TrackConfig
	UI      UIConfig
}

// ContactConfig holds contact form settings.
type ContactConfig struct {
	EndpointURL   string        `mapstructure:"endpoint_url"`
	SubmitTimeout time.Duration `mapstructure:"submit_timeout"`
	InputDebounce time.Duration `mapstructure:"input_debounce"`
}

// TrackConfig holds analytics and visibility tracking settings.
type TrackConfig struct {
	HoverDebounce    time.Duration `mapstructure:"hover_debounce"`
	SectionThreshold float64       `mapstructure:"section_threshold"`
	LazyThreshold    float64       `mapstructure:"lazy_threshold"`
	MarginRows       int           `mapstructure:"margin_rows"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MaxWidth     int           `mapstructure:"max_width"`
	NoticeExpiry time.Duration `mapstructure:"notice_expiry"`
}

// Load reads configuration from file and env. Env var overrides use prefix LANDING_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("contact.endpoint_url", "https://api.halcyonstudio.example/contact")
	v.SetDefault("contact.submit_timeout", "8s")
	v.SetDefault("contact.input_debounce", "400ms")
	v.SetDefault("track.hover_debounce", "300ms")
	v.SetDefault("track.section_threshold", 0.25)
	v.SetDefault("track.lazy_threshold", 0.1)
	v.SetDefault("track.margin_rows", 4)
	v.SetDefault("ui.max_width", 96)
	v.SetDefault("ui.notice_expiry", "4s")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LANDING_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "landing"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LANDING")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the interaction layer cannot work with.
func (c Config) Validate() error {
	if c.Contact.EndpointURL == "" {
		return fmt.Errorf("config: contact.endpoint_url must not be empty")
	}
	if c.Contact.SubmitTimeout <= 0 {
		return fmt.Errorf("config: contact.submit_timeout must be positive, got %s", c.Contact.SubmitTimeout)
	}
	if c.Contact.InputDebounce < 0 || c.Track.HoverDebounce < 0 {
		return fmt.Errorf("config: debounce windows must not be negative")
	}
	for name, th := range map[string]float64{
		"track.section_threshold": c.Track.SectionThreshold,
		"track.lazy_threshold":    c.Track.LazyThreshold,
	} {
		if th <= 0 || th > 1 {
			return fmt.Errorf("config: %s must be in (0, 1], got %v", name, th)
		}
	}
	if c.Track.MarginRows < 0 {
		return fmt.Errorf("config: track.margin_rows must not be negative")
	}
	if c.UI.NoticeExpiry <= 0 {
		return fmt.Errorf("config: ui.notice_expiry must be positive")
	}
	return nil
}
