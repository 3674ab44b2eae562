// Package config loads unitctl settings from defaults, a YAML file,
// UNITCTL_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"unitctl/system"
	"unitctl/systemctl"
	"unitctl/unit"
)

// AppName is used for the config file name and the environment prefix.
const AppName = "unitctl"

const (
	KeyPath      = "systemctl.path"
	KeyPrefix    = "systemctl.prefix"
	KeyUser      = "systemctl.user"
	KeyTimeout   = "systemctl.timeout"
	KeyDryRun    = "systemctl.dry_run"
	KeySupported = "units.supported"
	KeyLogLevel  = "log.level"
)

// Config is the decoded configuration.
type Config struct {
	Systemctl Systemctl `mapstructure:"systemctl"`
	Units     Units     `mapstructure:"units"`
	Log       Log       `mapstructure:"log"`
}

// Systemctl configures how the control executable is run.
type Systemctl struct {
	Path    string        `mapstructure:"path"`
	Prefix  string        `mapstructure:"prefix"`
	User    bool          `mapstructure:"user"`
	Timeout time.Duration `mapstructure:"timeout"`
	DryRun  bool          `mapstructure:"dry_run"`
}

// Units configures the supported unit types.
type Units struct {
	Supported []string `mapstructure:"supported"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPath, system.DefaultPath)
	v.SetDefault(KeyPrefix, "")
	v.SetDefault(KeyUser, false)
	v.SetDefault(KeyTimeout, "30s")
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeySupported, []string{
		string(unit.TypeService),
		string(unit.TypeTimer),
		string(unit.TypeSocket),
	})
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
}

// New returns a viper instance with defaults, the environment and the
// config search path set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(AppName)
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/" + AppName)
	v.AddConfigPath("/etc/" + AppName)
	return v
}

// Load reads the config file, if any, and decodes v. A missing file is only
// an error when one was set explicitly with SetConfigFile.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks values viper cannot check while decoding.
func (c *Config) Validate() error {
	if c.Systemctl.Path == "" {
		return fmt.Errorf("%s must not be empty", KeyPath)
	}
	if c.Systemctl.Timeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyTimeout)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if _, err := shlex.Split(c.Systemctl.Prefix); err != nil {
		return fmt.Errorf("%s: %w", KeyPrefix, err)
	}
	for _, s := range c.Units.Supported {
		if s == "" || strings.ContainsAny(s, ". \t") {
			return fmt.Errorf("%s: invalid unit type %q", KeySupported, s)
		}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Executor returns the executor described by the systemctl section.
func (c *Config) Executor(log logrus.FieldLogger) (system.Executor, error) {
	prefix, err := shlex.Split(c.Systemctl.Prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyPrefix, err)
	}

	cmd := system.NewCommand(c.Systemctl.Path).
		WithPrefix(prefix...).
		WithUser(c.Systemctl.User).
		WithTimeout(c.Systemctl.Timeout)
	cmd.Log = log

	if c.Systemctl.DryRun {
		return system.NewDryRun(cmd), nil
	}
	return cmd, nil
}

// Options returns the SystemCtl options making the registry support exactly
// the configured unit types.
func (c *Config) Options() []systemctl.Option {
	types := make([]unit.Type, 0, len(c.Units.Supported))
	want := make(map[unit.Type]bool, len(c.Units.Supported))
	for _, s := range c.Units.Supported {
		typ := unit.Type(s)
		types = append(types, typ)
		want[typ] = true
	}

	return []systemctl.Option{
		systemctl.WithRegistryFunc(func(reg *unit.Registry) {
			for _, typ := range reg.Types() {
				if !want[typ] {
					reg.Unregister(typ)
				}
			}
			reg.RegisterGeneric(types...)
		}),
	}
}
