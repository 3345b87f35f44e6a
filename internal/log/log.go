// Package log configures zap as the backend for log/slog.
//
// Initialize should be called once at startup. Library code then logs with the
// slog.*Context functions so that attributes added with ContextWithAttrs are
// included.
package log

import (
	golog "log"
	"log/slog"
	"strings"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// LoggingEnv is used to represent a specific configuration used by a given
// environment.
type LoggingEnv string

// String implements the Stringer interface.
func (e LoggingEnv) String() string {
	return string(e)
}

const (
	LoggingEnvDev  LoggingEnv = "dev"
	LoggingEnvProd LoggingEnv = "prod"
)

var defaultLoggingEnv = LoggingEnvDev

// ParseEnv maps the value of the LOGGER_ENV environment variable to a
// LoggingEnv. Unknown values select LoggingEnvDev.
func ParseEnv(env string) LoggingEnv {
	if strings.EqualFold(env, LoggingEnvProd.String()) {
		return LoggingEnvProd
	}
	return LoggingEnvDev
}

// Initialize sets up zap for the given environment and installs it as the
// slog default logger, which is also returned.
//
// "prod" uses the zapdriver production configuration so that output can be
// ingested by StackDriver, anything else uses zap's development configuration.
func Initialize(env string) *slog.Logger {
	var err error
	var logger *zap.Logger

	defaultLoggingEnv = ParseEnv(env)
	switch defaultLoggingEnv {
	case LoggingEnvProd:
		config := zapdriver.NewProductionConfig()
		// Make sure sampling is disabled.
		config.Sampling = nil
		// Use the zapdriver Core so that labels are handled correctly.
		logger, err = config.Build(zapdriver.WrapCore())
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		golog.Panic(err)
	}
	zap.RedirectStdLog(logger)

	slogger := slog.New(NewContextLogHandler(zapslog.NewHandler(logger.Core(), zapslog.WithCaller(true))))
	slog.SetDefault(slogger)
	return slogger
}

// LabelAttr causes attributes written by zapdriver to be marked as labels inside
// StackDriver when LoggingEnv is LoggingEnvProd. Otherwise it wraps slog.String.
func LabelAttr(key, value string) slog.Attr {
	if defaultLoggingEnv == LoggingEnvProd {
		return slog.String("labels."+key, value)
	}
	return slog.String(key, value)
}
