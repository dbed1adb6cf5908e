// Package config loads hoarder settings from defaults, a TOML file and
// HOARDER_* environment variables, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"hoarder/internal/application"
)

const envPrefix = "HOARDER"

// Config is the full configuration surface
type Config struct {
	Navidrome NavidromeConfig `mapstructure:"navidrome"`
	LastFM    LastFMConfig    `mapstructure:"lastfm"`
	Graph     GraphConfig     `mapstructure:"graph"`
	Expand    ExpandConfig    `mapstructure:"expand"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Neo4j     Neo4jConfig     `mapstructure:"neo4j"`
	Log       LogConfig       `mapstructure:"log"`
	HTTP      HTTPConfig      `mapstructure:"http"`
}

// NavidromeConfig locates the music library
type NavidromeConfig struct {
	APIBase  string `mapstructure:"api_base"`
	Login    string `mapstructure:"login"`
	Password string `mapstructure:"password"`
}

// LastFMConfig holds the similarity service credentials
type LastFMConfig struct {
	APIBase string `mapstructure:"api_base"`
	APIKey  string `mapstructure:"api_key"`
}

type GraphConfig struct {
	MatchThreshold float64 `mapstructure:"match_threshold"`
	ShowOrphans    bool    `mapstructure:"show_orphans"`
}

type ExpandConfig struct {
	FetchLimit        int           `mapstructure:"fetch_limit"`
	ReducedFetchLimit int           `mapstructure:"reduced_fetch_limit"`
	ReduceAbove       int           `mapstructure:"reduce_above"`
	RequestDelay      time.Duration `mapstructure:"request_delay"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Hops              int           `mapstructure:"hops"`
}

// CacheConfig selects where fetched similarities are kept
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Cache backends
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// Load reads the configuration. An empty path looks for the default file
// and carries on without it; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := newViper()

	if path == "" {
		path = DefaultPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/hoarder/config.toml
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "hoarder", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Settings maps the configuration onto the traversal settings and
// validates them.
func (c *Config) Settings() (application.Settings, error) {
	s := application.Settings{
		MatchThreshold:    c.Graph.MatchThreshold,
		ShowOrphans:       c.Graph.ShowOrphans,
		CacheEnabled:      c.Cache.Enabled,
		FetchLimit:        c.Expand.FetchLimit,
		ReducedFetchLimit: c.Expand.ReducedFetchLimit,
		ReduceFetchAbove:  c.Expand.ReduceAbove,
		RequestDelay:      c.Expand.RequestDelay,
		RequestsPerSecond: c.Expand.RequestsPerSecond,
		Hops:              c.Expand.Hops,
	}
	if err := s.Validate(); err != nil {
		return application.Settings{}, err
	}
	return s, nil
}

// ValidateCatalog checks what is needed to reach the music library
func (c *Config) ValidateCatalog() error {
	if err := application.ValidateRequired("navidrome.api_base", c.Navidrome.APIBase); err != nil {
		return err
	}
	return application.ValidateRequired("navidrome.login", c.Navidrome.Login)
}

// ValidateSimilarity checks what is needed to query last.fm
func (c *Config) ValidateSimilarity() error {
	return application.ValidateRequired("lastfm.api_key", c.LastFM.APIKey)
}

// ValidateNeo4j checks what is needed for graph export
func (c *Config) ValidateNeo4j() error {
	return application.ValidateRequired("neo4j.uri", c.Neo4j.URI)
}

// WriteDefault writes a config file holding every default value to path,
// creating parent directories. An existing file is left untouched and
// reported as false.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrap(err, "creating config directory")
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("toml")
	if err := v.SafeWriteConfigAs(path); err != nil {
		return false, errors.Wrapf(err, "writing config file %s", path)
	}
	return true, nil
}
