package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable, e.g.
// INDICATORBAR_LOG_LEVEL.
const EnvPrefix = "INDICATORBAR"

// Defaults mirrored by the struct tags below.
const (
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = LogFormatText
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Env holds the environment-based settings.
type Env struct {
	// ConfigDir overrides the directory holding config.json.
	// Env: INDICATORBAR_CONFIG_DIR
	ConfigDir string `envconfig:"CONFIG_DIR"`

	// LogLevel is the log verbosity level.
	// Env: INDICATORBAR_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (text or json).
	// Env: INDICATORBAR_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// TraceLog enables per-move and per-snap debug lines.
	// Env: INDICATORBAR_TRACE_LOG (default: false)
	TraceLog bool `envconfig:"TRACE_LOG" default:"false"`
}

// LoadEnv reads the INDICATORBAR_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// Format normalizes LogFormat; anything but json is text.
func (e Env) Format() LogFormat {
	if strings.EqualFold(strings.TrimSpace(e.LogFormat), string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatText
}
