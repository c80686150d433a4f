// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DestinationDir string

	Server   string
	Port     int
	User     string
	Password string

	Include []string
	Exclude []string

	ForceAll     bool
	BatchEnabled bool
	BatchSize    int
	DryRun       bool

	Database string

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		DestinationDir: ".",
		Port:           993,
		BatchEnabled:   true,
		BatchSize:      10,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Server, "Server must not be empty, set to the hostname of the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.User, "User must not be empty, set to username on the imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Password, "Password must not be empty, set to password of User on the imap server"); err != nil {
		return err
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("Port must be between 1 and 65535, got %d", c.Port)
	}

	if c.BatchSize < 1 {
		return fmt.Errorf("BatchSize must be positive, got %d", c.BatchSize)
	}

	if len(c.Include) > 0 && len(c.Exclude) > 0 {
		return fmt.Errorf("Include and Exclude cannot be set at the same time")
	}

	return nil
}

// Addr is the dial address of the imap server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server, c.Port)
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
