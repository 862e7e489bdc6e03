package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Credentials are SSH credentials resolved from the per-user credentials
// file, so passwords can stay out of project config files.
type Credentials struct {
	Username string
	Password string
}

// CredentialsPath returns the location of the INI credentials file,
// ~/.fcount/credentials.
func CredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, LocalConfigDir, LocalCredentialsFile), nil
}

// LoadProfileCredentials loads a named profile section from the
// credentials file. Each section carries a username and password key:
//
//	[backup-host]
//	username = deploy
//	password = hunter2
func LoadProfileCredentials(profile string) (Credentials, error) {
	path, err := CredentialsPath()
	if err != nil {
		return Credentials{}, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Credentials{}, fmt.Errorf("credentials file not found: %s", path)
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to load credentials file: %w", err)
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return Credentials{}, fmt.Errorf("profile '%s' not found in credentials file", profile)
	}

	creds := Credentials{
		Username: section.Key("username").String(),
		Password: section.Key("password").String(),
	}
	if creds.Username == "" {
		return Credentials{}, fmt.Errorf("incomplete credentials in profile '%s'", profile)
	}
	return creds, nil
}

// ApplyProfile fills in the config's username/password from its named
// profile, without overwriting values set explicitly in the config file.
func (c *ScanConfig) ApplyProfile() error {
	if c.Profile == "" {
		return nil
	}
	creds, err := LoadProfileCredentials(c.Profile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Username == "" {
		c.Username = creds.Username
	}
	if c.Password == "" {
		c.Password = creds.Password
	}
	return nil
}
