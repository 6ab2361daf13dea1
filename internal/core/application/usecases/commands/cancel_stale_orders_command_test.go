package commands_test

import (
	"testing"
	"time"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand(t *testing.T) {
	owner, err := actor.NewActor(kernel.NewUUID(), "Zanele Khumalo", "owner@swiftdrop.co.za", actor.RoleOwner)
	require.NoError(t, err)

	t.Run("should create command with positive age", func(t *testing.T) {
		cmd, err := commands.NewCancelStaleOrdersCommand(30*time.Minute, owner)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, 30*time.Minute, cmd.OlderThan())
		require.True(t, owner.IsEqual(cmd.Acting()))
	})

	t.Run("should reject zero age", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(0, owner)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative age", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(-time.Minute, owner)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject nil actor", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(time.Hour, nil)

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CancelStaleOrdersCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelStaleOrdersCommandIsNotConstructed)
	})
}
