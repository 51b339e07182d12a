package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// El nivel configurado (APP_LOG_LEVEL) debe traducirse al nivel de zerolog.
func TestNew_NivelConfigurado(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tc := range cases {
		l := logger.New(logger.Config{Env: "production", Level: tc.level})
		assert.Equal(t, tc.want, l.Zerolog().GetLevel(), "nivel %q", tc.level)
	}
}

// Un nivel desconocido no debe silenciar la aplicación: cae a info.
func TestNew_NivelDesconocido_CaeAInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "ruidoso"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
