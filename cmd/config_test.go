package cmd_test

import (
	"log/slog"
	"testing"

	"backoffice/cmd"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	t.Run("should default sslmode to disable", func(t *testing.T) {
		c := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBPassword: "secret", DBName: "backoffice"}

		assert.Equal(t, "host=db port=5432 user=app password=secret dbname=backoffice sslmode=disable", c.DSN())
	})

	t.Run("should keep an explicit sslmode", func(t *testing.T) {
		c := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "app", DBName: "backoffice", DBSslMode: "require"}

		assert.Contains(t, c.DSN(), "sslmode=require")
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range tests {
		assert.Equal(t, want, cmd.Config{LogLevel: raw}.SlogLevel(), raw)
	}
}
