package guard_test

import (
	"errors"
	"testing"

	"backoffice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_EmbeddedInCommand shows the guard protecting a command type.
func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNoteCommandNotConstructed := errors.New("noteCommand must be created via newNoteCommand")

	type noteCommand struct {
		note  string
		guard guard.ConstructorGuard
	}

	newNoteCommand := func(note string) (noteCommand, error) {
		if note == "" {
			return noteCommand{}, errors.New("note is required")
		}
		return noteCommand{note: note, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newNoteCommand("paid")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNoteCommandNotConstructed))
		assert.Equal(t, "paid", cmd.note)
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		cmd := noteCommand{note: "paid"}

		require.ErrorIs(t, cmd.guard.Validate(errNoteCommandNotConstructed), errNoteCommandNotConstructed)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		cmd, err := newNoteCommand("")

		require.Error(t, err)
		require.Error(t, cmd.guard.Validate(errNoteCommandNotConstructed))
	})
}
