// Package config loads explorer settings from config.yaml and TEXPLORE_*
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	IconsNerd  = "nerd"
	IconsASCII = "ascii"

	DefaultPager           = "bat"
	DefaultRefreshInterval = 30 * time.Second
	DefaultDoubleClick     = 400 * time.Millisecond
)

// Config is the resolved runtime configuration.
type Config struct {
	Pager struct {
		Command string   `mapstructure:"command"`
		Args    []string `mapstructure:"args"`
	} `mapstructure:"pager"`
	Trash struct {
		Command string `mapstructure:"command"`
	} `mapstructure:"trash"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	DoubleClick     time.Duration `mapstructure:"double_click"`
	Icons           string        `mapstructure:"icons"`
	Watch           bool          `mapstructure:"watch"`
	LogFile         string        `mapstructure:"log_file"`
}

// File is the on-disk shape of config.yaml. Durations are Go duration
// strings such as "30s".
type File struct {
	Pager           PagerFile `yaml:"pager" json:"pager"`
	Trash           TrashFile `yaml:"trash" json:"trash"`
	RefreshInterval string    `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"description=Interval between full resyncs (Go duration),default=30s"`
	DoubleClick     string    `yaml:"double_click" json:"double_click" jsonschema:"description=Maximum gap between the clicks of a double click,default=400ms"`
	Icons           string    `yaml:"icons" json:"icons" jsonschema:"enum=nerd,enum=ascii,default=nerd"`
	Watch           bool      `yaml:"watch" json:"watch" jsonschema:"description=Resync when files under the root change"`
	LogFile         string    `yaml:"log_file,omitempty" json:"log_file,omitempty" jsonschema:"description=Write debug logs to this file"`
}

type PagerFile struct {
	Command string   `yaml:"command" json:"command" jsonschema:"description=Pretty-printer invoked with bat-compatible flags,default=bat"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty" jsonschema:"description=Extra pager arguments"`
}

type TrashFile struct {
	Command string `yaml:"command,omitempty" json:"command,omitempty" jsonschema:"description=Trash command line; empty auto-detects trash/trash-put/gio trash"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Pager.Command = DefaultPager
	c.RefreshInterval = DefaultRefreshInterval
	c.DoubleClick = DefaultDoubleClick
	c.Icons = IconsNerd
	return c
}

func newViper() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault("pager.command", d.Pager.Command)
	v.SetDefault("pager.args", []string{})
	v.SetDefault("trash.command", "")
	v.SetDefault("refresh_interval", d.RefreshInterval)
	v.SetDefault("double_click", d.DoubleClick)
	v.SetDefault("icons", d.Icons)
	v.SetDefault("watch", false)
	v.SetDefault("log_file", "")
	v.SetEnvPrefix("TEXPLORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, or config.yaml in Dir() when path is empty. A missing
// default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

// LoadOrDefault is Load, except that a missing file at an explicit path
// yields the defaults with TEXPLORE_* overrides applied.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return decode(newViper())
		}
	}
	return Load(path)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.normalize()
	return c, nil
}

func (c *Config) normalize() {
	d := Default()
	if strings.TrimSpace(c.Pager.Command) == "" {
		c.Pager.Command = d.Pager.Command
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = d.RefreshInterval
	}
	if c.DoubleClick <= 0 {
		c.DoubleClick = d.DoubleClick
	}
	if c.Icons != IconsNerd && c.Icons != IconsASCII {
		c.Icons = d.Icons
	}
}

// File converts c to its on-disk shape.
func (c Config) File() File {
	return File{
		Pager:           PagerFile{Command: c.Pager.Command, Args: c.Pager.Args},
		Trash:           TrashFile{Command: c.Trash.Command},
		RefreshInterval: c.RefreshInterval.String(),
		DoubleClick:     c.DoubleClick.String(),
		Icons:           c.Icons,
		Watch:           c.Watch,
		LogFile:         c.LogFile,
	}
}

// Save writes c as YAML, creating the parent directory.
func Save(path string, c Config) error {
	b, err := yaml.Marshal(c.File())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Schema returns the JSON Schema of config.yaml.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	s := r.Reflect(&File{})
	s.Title = "texplore config"
	s.Description = "Settings read from config.yaml; every key can be overridden with TEXPLORE_<KEY>."
	return s
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(s *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
