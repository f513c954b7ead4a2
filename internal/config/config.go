// Package config loads algoscope settings from defaults, an optional YAML
// file and ALGOSCOPE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/algoscope/codelabel"
	"github.com/katalvlaran/algoscope/internal/logging"
)

// Sentinel validation errors.
var (
	ErrInvalidPort     = errors.New("invalid server port")
	ErrInvalidSpeed    = errors.New("playback speed must be positive")
	ErrInvalidTimeout  = errors.New("server timeouts must be positive")
	ErrInvalidLevel    = errors.New("unknown logging level")
	ErrInvalidFormat   = errors.New("logging format must be text or json")
	ErrInvalidLanguage = errors.New("unknown render language")
	ErrInvalidWidth    = errors.New("render width must be positive")
)

// Default configuration values.
const (
	defaultPort  = 8080
	defaultHost  = "0.0.0.0"
	defaultSpeed = "500ms"
	defaultWidth = 60
	maxPort      = 65535

	// EnvPrefix prefixes every environment override, e.g. ALGOSCOPE_SERVER_PORT.
	EnvPrefix = "ALGOSCOPE"
)

// Config holds all algoscope settings.
type Config struct {
	Playback PlaybackConfig `mapstructure:"playback"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Render   RenderConfig   `mapstructure:"render"`
}

// PlaybackConfig drives the terminal player.
type PlaybackConfig struct {
	Speed    time.Duration `mapstructure:"speed"`
	AutoPlay bool          `mapstructure:"autoplay"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RenderConfig holds terminal rendering settings.
type RenderConfig struct {
	Language string `mapstructure:"language"`
	Color    bool   `mapstructure:"color"`
	Width    int    `mapstructure:"width"`
}

// Load reads configuration from path, or from algoscope.yaml in ".",
// "./config" or "$HOME/.algoscope" when path is empty. A missing file is
// not an error; environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("algoscope")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.algoscope")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{Speed: 500 * time.Millisecond},
		Server: ServerConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: logging.FormatText},
		Render:  RenderConfig{Language: string(codelabel.Go), Color: true, Width: defaultWidth},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("playback.speed", defaultSpeed)
	v.SetDefault("playback.autoplay", false)

	v.SetDefault("server.host", defaultHost)
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", logging.FormatText)

	v.SetDefault("render.language", string(codelabel.Go))
	v.SetDefault("render.color", true)
	v.SetDefault("render.width", defaultWidth)
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 || cfg.Server.WriteTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if cfg.Playback.Speed <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSpeed, cfg.Playback.Speed)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Logging.Format)
	}
	lang, err := codelabel.ParseLanguage(cfg.Render.Language)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, cfg.Render.Language)
	}
	cfg.Render.Language = string(lang)
	if cfg.Render.Width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, cfg.Render.Width)
	}
	return nil
}
