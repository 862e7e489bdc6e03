package config

// Connection types
const (
	ConnectionLocal = "local"
	ConnectionSSH   = "ssh"
)

// Default Values
const (
	// DefaultConfigFile is the config filename used when --config is not given
	DefaultConfigFile = "config.json"

	// DefaultSSHPort is the default SSH port
	DefaultSSHPort = 22
)

// File Permissions
const (
	// PermConfigFile is the file permission for generated config files
	PermConfigFile = 0644

	// PermCredentialsFile is the file permission for the credentials file (sensitive)
	PermCredentialsFile = 0600
)

// Path Constants
const (
	// LocalConfigDir is the per-user directory for fcount files
	LocalConfigDir = ".fcount"

	// LocalCredentialsFile is the filename of the INI credentials file
	LocalCredentialsFile = "credentials"
)

// SampleConfig is the config file written by `fcount init`. Switching
// connection_type to "ssh" makes the host/username/password fields required.
const SampleConfig = `{
  "connection_type": "local",
  "directory": "/var/log",
  "extensions": [".log", ".txt"],
  "host": "",
  "username": "",
  "password": "",
  "port": 22
}
`
