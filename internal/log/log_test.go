package log

import (
	"log/slog"
	"testing"
)

func TestParseEnv(t *testing.T) {
	tests := map[string]LoggingEnv{
		"":      LoggingEnvDev,
		"dev":   LoggingEnvDev,
		"prod":  LoggingEnvProd,
		"PROD":  LoggingEnvProd,
		"stage": LoggingEnvDev,
	}
	for env, want := range tests {
		if got := ParseEnv(env); got != want {
			t.Errorf("ParseEnv(%q) = %v, want %v", env, got, want)
		}
	}
}

func TestLabelAttr(t *testing.T) {
	orig := defaultLoggingEnv
	t.Cleanup(func() { defaultLoggingEnv = orig })

	defaultLoggingEnv = LoggingEnvDev
	if got, want := LabelAttr("package", "left-pad"), slog.String("package", "left-pad"); !got.Equal(want) {
		t.Errorf("LabelAttr() in dev = %v, want %v", got, want)
	}

	defaultLoggingEnv = LoggingEnvProd
	if got, want := LabelAttr("package", "left-pad"), slog.String("labels.package", "left-pad"); !got.Equal(want) {
		t.Errorf("LabelAttr() in prod = %v, want %v", got, want)
	}
}

func TestInitialize(t *testing.T) {
	origLogger := slog.Default()
	origEnv := defaultLoggingEnv
	t.Cleanup(func() {
		slog.SetDefault(origLogger)
		defaultLoggingEnv = origEnv
	})

	for _, env := range []string{"dev", "prod"} {
		logger := Initialize(env)
		if logger == nil {
			t.Fatalf("Initialize(%q) = nil", env)
		}
		if slog.Default() != logger {
			t.Errorf("Initialize(%q) did not install the slog default", env)
		}
		if _, ok := logger.Handler().(*contextHandler); !ok {
			t.Errorf("Initialize(%q) handler = %T, want *contextHandler", env, logger.Handler())
		}
		if defaultLoggingEnv != ParseEnv(env) {
			t.Errorf("Initialize(%q) env = %v", env, defaultLoggingEnv)
		}
	}
}
