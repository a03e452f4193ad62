package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"backoffice/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCompositionRoot_BuildsEveryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := cmd.NewCompositionRoot(cmd.Config{}, &gorm.DB{}, logger)
	require.NoError(t, err)

	assert.NotNil(t, app.CreateServer())
	assert.NotNil(t, app.CreateJobManager())
}
