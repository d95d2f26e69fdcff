package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Autsav24/EDIX12/pkg/eligibility"
)

// Config is the service configuration. Zero values fall back to sensible
// defaults, so an empty or missing file still yields a runnable service.
type Config struct {
	Listen       string `yaml:"listen" json:"listen"`
	ProfilesFile string `yaml:"profiles_file,omitempty" json:"profiles_file,omitempty"`
	ControlFile  string `yaml:"control_file,omitempty" json:"control_file,omitempty"`

	// SenderID and ReceiverID stamp outbound ISA envelopes when requests
	// omit them.
	SenderID   string `yaml:"sender_id,omitempty" json:"sender_id,omitempty"`
	ReceiverID string `yaml:"receiver_id,omitempty" json:"receiver_id,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:      ":8080",
		ControlFile: "control_numbers.dat",
	}
}

// Load reads a YAML configuration file and applies defaults to any field
// left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.ControlFile == "" {
		cfg.ControlFile = "control_numbers.dat"
	}
	return cfg, nil
}

// Profiles returns the payer profile table: the built-ins, shadowed by
// entries from the configured YAML profile file when one is set. The file
// maps profile keys to profile definitions.
func (c *Config) Profiles() (map[string]eligibility.Profile, error) {
	profiles := eligibility.BuiltinProfiles()
	if c.ProfilesFile == "" {
		return profiles, nil
	}
	data, err := os.ReadFile(c.ProfilesFile)
	if err != nil {
		return nil, err
	}
	var loaded map[string]eligibility.Profile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", c.ProfilesFile, err)
	}
	for key, profile := range loaded {
		if profile.Key == "" {
			profile.Key = key
		}
		profiles[key] = profile
	}
	return profiles, nil
}
