package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// config mirrors the optional YAML configuration file. Every field is
// optional; values present in the file override the command line.
type config struct {
	Timeout  string `yaml:"timeout"`   // e.g. "60s", "2m"
	TempRoot string `yaml:"temp_root"` // base for work directories
	Seccomp  *bool  `yaml:"seccomp"`   // destructive syscall denial
	LogLevel string `yaml:"log_level"` // logrus level name
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := &config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return nil, fmt.Errorf("config %s: timeout: %w", path, err)
		}
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return c, nil
}

// apply overlays the config file values onto the effective settings.
func (c *config) apply(timeout *time.Duration, tmpRoot *string, seccomp *bool, log *logrus.Logger) {
	if c.Timeout != "" {
		d, _ := time.ParseDuration(c.Timeout)
		*timeout = d
	}
	if c.TempRoot != "" {
		*tmpRoot = c.TempRoot
	}
	if c.Seccomp != nil {
		*seccomp = *c.Seccomp
	}
	if c.LogLevel != "" {
		lvl, _ := logrus.ParseLevel(c.LogLevel)
		log.SetLevel(lvl)
	}
}
