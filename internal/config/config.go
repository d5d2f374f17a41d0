// Package config loads flyweight CLI settings from flags and FLYWEIGHT_* env vars.
package config

import (
	"fmt"
	"io"
	stdslog "log/slog"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/flyweight"
	"github.com/unkn0wn-root/flyweight/codec"
	logruslog "github.com/unkn0wn-root/flyweight/log/logrus"
	slogadapter "github.com/unkn0wn-root/flyweight/log/slog"
	zaplog "github.com/unkn0wn-root/flyweight/log/zap"
)

const EnvPrefix = "FLYWEIGHT"

type Config struct {
	Logger    string `mapstructure:"logger"` // zap | logrus | slog | none
	Level     string `mapstructure:"level"`  // debug | info | warn | error
	Codec     string `mapstructure:"codec"`  // json | cbor | msgpack
	Namespace string `mapstructure:"namespace"`
	Hooks     bool   `mapstructure:"hooks"` // log hook events through slog
	MaxDecode int    `mapstructure:"max-decode"` // per-entry snapshot payload limit; 0 = off
}

const defaultMaxDecode = 1 << 20

// Flags registers every setting on fs with its default.
func Flags(fs *pflag.FlagSet) {
	fs.String("logger", "none", "log backend: zap, logrus, slog or none")
	fs.String("level", "info", "log level: debug, info, warn or error")
	fs.String("codec", "json", "snapshot codec: json, cbor or msgpack")
	fs.String("namespace", "flyweight", "namespace attached to log records")
	fs.Bool("hooks", false, "log interning hook events (async, sampled)")
	fs.Int("max-decode", defaultMaxDecode, "max bytes per snapshot entry when decoding; 0 disables")
}

// Load resolves settings with precedence flag > env > default.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Logger {
	case "zap", "logrus", "slog", "none", "":
	default:
		return fmt.Errorf("config: unknown logger %q", c.Logger)
	}
	if _, ok := codec.ByName[flyweight.SharedState](c.Codec); !ok {
		return fmt.Errorf("config: unknown codec %q", c.Codec)
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	if c.MaxDecode < 0 {
		return fmt.Errorf("config: max-decode must be >= 0, got %d", c.MaxDecode)
	}
	return nil
}

// SnapshotCodec returns the configured codec, size-limited on decode.
// Call Validate first.
func (c Config) SnapshotCodec() codec.Codec[flyweight.SharedState] {
	cd, _ := codec.ByName[flyweight.SharedState](c.Codec)
	return codec.Limit[flyweight.SharedState]{Inner: cd, MaxDecode: c.MaxDecode}
}

func (c Config) slogLevel() (stdslog.Level, error) {
	var l stdslog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("config: level %q: %w", c.Level, err)
	}
	return l, nil
}

// SlogLogger returns a text slog logger on w at the configured level.
func (c Config) SlogLogger(w io.Writer) *stdslog.Logger {
	lvl, _ := c.slogLevel()
	return stdslog.New(stdslog.NewTextHandler(w, &stdslog.HandlerOptions{Level: lvl}))
}

// NewLogger builds the configured flyweight.Logger writing to w.
// The returned func flushes buffered output.
func (c Config) NewLogger(w io.Writer) (flyweight.Logger, func(), error) {
	nop := func() {}
	switch c.Logger {
	case "zap":
		lvl, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, nop, fmt.Errorf("config: zap level: %w", err)
		}
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			lvl,
		)
		l := zap.New(core)
		return zaplog.ZapLogger{L: l}, func() { _ = l.Sync() }, nil
	case "logrus":
		lvl, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return nil, nop, fmt.Errorf("config: logrus level: %w", err)
		}
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(lvl)
		return logruslog.New(l), nop, nil
	case "slog":
		return slogadapter.Logger{L: c.SlogLogger(w)}, nop, nil
	default:
		return flyweight.NopLogger{}, nop, nil
	}
}
