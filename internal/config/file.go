package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Server holds backend endpoint settings. Zero values mean the SDK defaults
// (the bitwarden.com cloud endpoints).
type Server struct {
	APIURL      string
	IdentityURL string
	// StateFile lets the SDK cache its authentication state between
	// invocations instead of logging in on every call.
	StateFile string
}

// DefaultServerPath returns the default config file location, or "" when the
// user's config directory cannot be determined.
func DefaultServerPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bwsm", "config.ini")
}

// LoadServer reads server settings from an INI file. A missing file is not
// an error; it simply yields the defaults. When path is empty the default
// location is used.
//
// Recognized keys:
//
//	[server]
//	api_url      = https://api.bitwarden.com
//	identity_url = https://identity.bitwarden.com
//	[auth]
//	state_file   = /path/to/state
func LoadServer(path string) (Server, error) {
	if path == "" {
		path = DefaultServerPath()
	}
	if path == "" {
		return Server{}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Server{}, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return Server{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	server := file.Section("server")
	return Server{
		APIURL:      server.Key("api_url").String(),
		IdentityURL: server.Key("identity_url").String(),
		StateFile:   file.Section("auth").Key("state_file").String(),
	}, nil
}
