package support

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
)

// Logger builds the process logger. Output goes to cfg.LogFile when set,
// otherwise to stderr.
func Logger(cfg Config) (*zerolog.Logger, func(), error) {
	var out io.Writer = os.Stderr
	cleanup := func() {}

	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open log file")
		}

		out = file
		cleanup = func() { _ = file.Close() }
	}

	logger, err := NewLogger(cfg, out)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	ConfigureAccessLog(cfg, out)

	return logger, cleanup, nil
}

func NewLogger(cfg Config, out io.Writer) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: cfg.LogFile != ""}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	return &logger, nil
}

// ConfigureAccessLog points the logrus standard logger, used for HTTP access
// logs, at the same destination and format as the process logger.
func ConfigureAccessLog(cfg Config, out io.Writer) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.Disabled || level > zerolog.InfoLevel {
		logrus.SetOutput(io.Discard)
		return
	}

	logrus.SetOutput(out)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: cfg.LogFile != "", FullTimestamp: true})
	}
}
