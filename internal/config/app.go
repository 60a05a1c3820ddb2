package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. DRAWDOWN_LOG_LEVEL
const EnvPrefix = "DRAWDOWN"

// AppConfig holds application settings, as opposed to the scenario inputs
type AppConfig struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Engine EngineConfig `mapstructure:"engine"`
	Output OutputConfig `mapstructure:"output"`
}

type ServerConfig struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type EngineConfig struct {
	SweepConcurrency int  `mapstructure:"sweep_concurrency"`
	Debug            bool `mapstructure:"debug"`
}

type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// flagKeys maps settings keys to the CLI flags that override them
var flagKeys = map[string]string{
	"log.level":        "log-level",
	"log.encoding":     "log-encoding",
	"engine.debug":     "debug",
	"server.http_addr": "addr",
	"output.dir":       "output",
	"output.format":    "format",
}

// LoadApp reads application settings. Precedence is flags, then
// DRAWDOWN_* environment variables, then the settings file, then defaults.
// An empty path skips the file.
func LoadApp(path string, flags *pflag.FlagSet) (AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", true)
	v.SetDefault("log.disable_stacktrace", true)
	v.SetDefault("engine.sweep_concurrency", 4)
	v.SetDefault("engine.debug", false)
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", "console")

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return AppConfig{}, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if cfg.Engine.SweepConcurrency < 1 {
		cfg.Engine.SweepConcurrency = 1
	}
	return cfg, nil
}
