// Package config loads the runtime settings of the mediasync function from
// defaults, an optional mediasync.yaml and MEDIASYNC_ prefixed environment
// variables.
package config

import (
	"io"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StageDev     = "dev"
	StageStaging = "staging"
	StageProd    = "prod"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"

	envPrefix = "MEDIASYNC"
)

// Config holds the runtime settings of the function.
type Config struct {
	Stage string    `mapstructure:"stage"`
	Log   LogConfig `mapstructure:"log"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("stage", StageDev)
	v.SetDefault("log.level", LogLevelInfo)
	v.SetDefault("log.format", LogFormatJSON)

	v.SetConfigName("mediasync")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if root := os.Getenv("LAMBDA_TASK_ROOT"); root != "" {
		v.AddConfigPath(root)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed decoding config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// Validate checks the stage and the nested log settings.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Stage, validation.Required, validation.In(StageDev, StageStaging, StageProd)),
		validation.Field(&c.Log),
	)
}

// Validate checks level and format against the supported values.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
		validation.Field(&l.Format, validation.Required, validation.In(LogFormatJSON, LogFormatText)),
	)
}

// NewLogger returns a logger writing to stdout, where the lambda runtime
// forwards it to cloudwatch.
func (c Config) NewLogger() *logrus.Logger {
	return c.newLogger(os.Stdout)
}

func (c Config) newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if level, err := logrus.ParseLevel(c.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	if c.Log.Format == LogFormatText {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
