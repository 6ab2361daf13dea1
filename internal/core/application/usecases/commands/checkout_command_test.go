package commands_test

import (
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/cart"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		lines := []cart.Line{pricedLine(t)}

		cmd, err := commands.NewCheckoutCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			lines,
			"Vilikazi Street, Orlando West", "House 4242, Orlando West",
			order.PaymentCard, pricedTotals(t),
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Lines(), 1)
		assert.Equal(t, order.PaymentCard, cmd.PaymentMethod())
	})

	t.Run("should reject empty line snapshot", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil,
			"pickup", "dropoff",
			order.PaymentCard, pricedTotals(t),
		)

		require.ErrorIs(t, err, errs.ErrEmptyCart)
	})

	t.Run("should reject missing addresses", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]cart.Line{pricedLine(t)},
			"", "",
			order.PaymentCard, pricedTotals(t),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown payment method", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]cart.Line{pricedLine(t)},
			"pickup", "dropoff",
			order.PaymentUnknown, pricedTotals(t),
		)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CheckoutCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}
