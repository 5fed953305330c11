package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/biolink/config.yml.
type GlobalConfig struct {
	// Server selects a profile by name (built-in or from Servers).
	Server string `yaml:"server,omitempty"`

	// Servers defines additional profiles or overrides built-in ones.
	// Fields left empty in an override inherit the built-in value.
	Servers map[string]Server `yaml:"servers,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "biolink"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// EnvServer selects a profile, overriding the config file.
	EnvServer = "BIOLINK_SERVER"
	// EnvBiolinkURL overrides the BioLink base URL of the selected profile.
	EnvBiolinkURL = "BIOLINK_URL"
)

// ErrUnknownServer is returned when a profile name matches nothing.
var ErrUnknownServer = errors.New("unknown server profile")

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/biolink/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}
	return LoadGlobalConfigFrom(path)
}

// LoadGlobalConfigFrom loads a global configuration file from an explicit path.
func LoadGlobalConfigFrom(path string) (*GlobalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}
	return &cfg, nil
}

// ResolveServer returns the server profile to use.
// Precedence for the profile name: name argument, BIOLINK_SERVER, the
// config file, then DefaultServerName. BIOLINK_URL replaces the BioLink
// base URL of whichever profile was chosen.
func (g *GlobalConfig) ResolveServer(name string) (Server, error) {
	if name == "" {
		name = os.Getenv(EnvServer)
	}
	if name == "" {
		name = g.Server
	}
	if name == "" {
		name = DefaultServerName
	}

	server, ok := builtinServers[name]
	override, hasOverride := g.Servers[name]
	if !ok && !hasOverride {
		return Server{}, fmt.Errorf("%w: %s (built-in: %v)", ErrUnknownServer, name, BuiltinServerNames())
	}
	if hasOverride {
		server = merge(server, override)
	}

	server.Name = name

	if u := os.Getenv(EnvBiolinkURL); u != "" {
		server.BiolinkURL = u
	}

	server = server.Normalized()
	if err := server.Validate(); err != nil {
		return Server{}, fmt.Errorf("server %s: %w", name, err)
	}
	return server, nil
}

// merge overlays the non-empty fields of o onto base.
func merge(base, o Server) Server {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Type, o.Type)
	set(&base.AppBase, o.AppBase)
	set(&base.SciGraphURL, o.SciGraphURL)
	set(&base.SciGraphDataURL, o.SciGraphDataURL)
	set(&base.GolrURL, o.GolrURL)
	set(&base.SearchURL, o.SearchURL)
	set(&base.OwlSimURL, o.OwlSimURL)
	set(&base.AnalyticsID, o.AnalyticsID)
	set(&base.BiolinkURL, o.BiolinkURL)
	set(&base.XrefsURL, o.XrefsURL)
	set(&base.AnalyzeURL, o.AnalyzeURL)
	set(&base.AssetsURL, o.AssetsURL)
	return base
}

// HelpfulConfigMessage returns a hint on how to select a server profile.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`Tip: Create %s to choose a default server:
  mkdir -p %s
  echo 'server: beta' > %s

Built-in servers: %v`,
		configPath,
		filepath.Dir(configPath),
		configPath,
		BuiltinServerNames())
}
