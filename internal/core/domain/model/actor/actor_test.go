package actor_test

import (
	"testing"

	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid customer", func(t *testing.T) {
		a, err := actor.NewActor(validID, "Thabo Mokoena", "thabo@gmail.com", actor.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(validID))
		assert.Equal(t, "Thabo Mokoena", a.Name())
		assert.Equal(t, "thabo@gmail.com", a.Email())
		assert.Equal(t, actor.RoleCustomer, a.Role())
		assert.Nil(t, a.RestaurantID())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := actor.NewActor(invalidID, "Speedy Sipho", "sipho@driver.co.za", actor.RoleDriver)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		a, err := actor.NewActor(validID, "", "sipho@driver.co.za", actor.RoleDriver)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "value is required: name")
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		a, err := actor.NewActor(validID, "Speedy Sipho", "", actor.RoleDriver)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "value is required: email")
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		a, err := actor.NewActor(validID, "Somebody", "x@y.co.za", actor.RoleUnknown)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should refuse restaurant admin role without restaurant", func(t *testing.T) {
		a, err := actor.NewActor(validID, "Kota King Admin", "kota@business.co.za", actor.RoleRestaurantAdmin)

		require.ErrorIs(t, err, actor.ErrRestaurantRequiredForAdmin)
		assert.Nil(t, a)
	})
}

func TestNewRestaurantAdmin(t *testing.T) {
	t.Run("should create admin bound to its restaurant", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		a, err := actor.NewRestaurantAdmin(kernel.NewUUID(), "Kota King Admin", "kota@business.co.za", restaurantID)

		require.NoError(t, err)
		assert.Equal(t, actor.RoleRestaurantAdmin, a.Role())
		require.NotNil(t, a.RestaurantID())
		assert.True(t, a.RestaurantID().IsEqual(restaurantID))
		assert.True(t, a.OperatesRestaurant(restaurantID))
		assert.False(t, a.OperatesRestaurant(kernel.NewUUID()))
	})

	t.Run("should fail with invalid restaurant id", func(t *testing.T) {
		var invalidRestaurant kernel.UUID

		a, err := actor.NewRestaurantAdmin(kernel.NewUUID(), "Kota King Admin", "kota@business.co.za", invalidRestaurant)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var a actor.Actor

		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})

	t.Run("nil actor fails validation", func(t *testing.T) {
		var a *actor.Actor

		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})
}

func TestRole(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		for _, role := range []actor.Role{
			actor.RoleOwner, actor.RoleRestaurantAdmin, actor.RoleDriver, actor.RoleCustomer,
		} {
			parsed, err := actor.RoleFromString(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("unknown role string is rejected", func(t *testing.T) {
		_, err := actor.RoleFromString("SUPERVISOR")
		require.Error(t, err)
	})

	t.Run("unknown role renders as UNKNOWN", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", actor.Role(42).String())
		assert.Equal(t, "UNKNOWN", actor.RoleUnknown.String())
	})
}
