// Package config loads and merges the layered motdyn configuration.
//
// Two TOML files are consulted: a system-wide one and a per-user one.
// Either layer may be missing, unreadable, or malformed; any of those
// degrades to "layer not provided" and never blocks the report.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sumant1122/motdyn/internal/log"
)

const (
	// SystemPath is the system-wide configuration file.
	SystemPath = "/etc/motdyn/config.toml"
	// UserPath is the per-user configuration file, tilde-expanded via HOME.
	UserPath = "~/.config/motdyn/config.toml"

	// DefaultFarewell is used when no farewell is configured, or the
	// configured one is blank after trimming.
	DefaultFarewell = "Have a nice day!"
)

// Config holds the optional cosmetic settings. Pointer fields
// distinguish "absent" from "present but empty" for merge purposes.
type Config struct {
	AsciiArt *string `toml:"ascii_art"`
	Farewell *string `toml:"farewell"`
}

// FarewellText returns the configured farewell, or DefaultFarewell when
// it is absent or blank.
func (c Config) FarewellText() string {
	if c.Farewell != nil && strings.TrimSpace(*c.Farewell) != "" {
		return *c.Farewell
	}
	return DefaultFarewell
}

// Load reads one configuration layer. The bool is false when the file
// is missing, unreadable, or fails to parse.
func Load(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("config: skip %s: %v", path, err)
		return Config{}, false
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		log.Debugf("config: bad toml in %s: %v", path, err)
		return Config{}, false
	}
	return cfg, true
}

// Merge combines the system and user layers. Any field present in the
// user layer overwrites the system value; absent fields keep it.
func Merge(sys Config, sysOK bool, usr Config, usrOK bool) Config {
	merged := Config{}
	if sysOK {
		merged = sys
	}
	if usrOK {
		if usr.AsciiArt != nil {
			merged.AsciiArt = usr.AsciiArt
		}
		if usr.Farewell != nil {
			merged.Farewell = usr.Farewell
		}
	}
	return merged
}

// LoadMerged loads both layers from the given paths and merges them.
func LoadMerged(sysPath, usrPath string, getenv func(string) string) Config {
	sys, sysOK := Load(sysPath)
	usr, usrOK := Load(ExpandTilde(usrPath, getenv))
	return Merge(sys, sysOK, usr, usrOK)
}

// ExpandTilde replaces a leading ~ with HOME. The path is returned
// unchanged when it has no tilde prefix or HOME is unset.
func ExpandTilde(path string, getenv func(string) string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home := getenv("HOME")
	if home == "" {
		return path
	}
	return home + path[1:]
}
