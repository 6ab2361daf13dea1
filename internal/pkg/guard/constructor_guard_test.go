package guard_test

import (
	"errors"
	"testing"

	"swiftdrop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("cart line not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("order not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Line struct {
		name     string
		quantity int
		guard    guard.ConstructorGuard
	}

	var errLineNotConstructed = errors.New("Line must be created via NewLine")

	newLine := func(name string, quantity int) (Line, error) {
		if name == "" {
			return Line{}, errors.New("name is required")
		}
		if quantity < 1 {
			return Line{}, errors.New("quantity must be at least 1")
		}
		return Line{
			name:     name,
			quantity: quantity,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateLine := func(l Line) error {
		return l.guard.Validate(errLineNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		line, err := newLine("Full House Kota", 2)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateLine(line))
		assert.Equal(t, "Full House Kota", line.name)
		assert.Equal(t, 2, line.quantity)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var line Line // zero value

		// When
		err := validateLine(line)

		// Then
		// Zero value Line has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errLineNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test empty name
		_, err := newLine("", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		// Test zero quantity
		_, err = newLine("Slap Chips", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be at least 1")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errParcelNotConstructed = errors.New("Parcel must be created via NewParcel")

	// Define a guard-aware base type
	type guardedParcel struct {
		guard guard.ConstructorGuard
	}

	newGuardedParcel := func() guardedParcel {
		return guardedParcel{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedParcel := func(g guardedParcel) error {
		return g.guard.Validate(errParcelNotConstructed)
	}

	// Define the actual domain object
	type Parcel struct {
		guardedParcel
		pickupAddress  string
		dropoffAddress string
		fee            int
	}

	newParcel := func(pickupAddress, dropoffAddress string, fee int) (Parcel, error) {
		if pickupAddress == "" {
			return Parcel{}, errors.New("pickup address is required")
		}
		if dropoffAddress == "" {
			return Parcel{}, errors.New("dropoff address is required")
		}
		if fee < 0 {
			return Parcel{}, errors.New("fee cannot be negative")
		}
		return Parcel{
			guardedParcel:  newGuardedParcel(),
			pickupAddress:  pickupAddress,
			dropoffAddress: dropoffAddress,
			fee:            fee,
		}, nil
	}

	t.Run("valid_parcel_construction", func(t *testing.T) {
		// When
		parcel, err := newParcel("Vilikazi Street, Orlando West", "House 4242, Orlando West", 30)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedParcel(parcel.guardedParcel))
		assert.Equal(t, "Vilikazi Street, Orlando West", parcel.pickupAddress)
		assert.Equal(t, "House 4242, Orlando West", parcel.dropoffAddress)
		assert.Equal(t, 30, parcel.fee)
	})

	t.Run("zero_value_parcel_fails_validation", func(t *testing.T) {
		// Given
		var parcel Parcel // zero value

		// When
		err := validateGuardedParcel(parcel.guardedParcel)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errParcelNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "order_not_constructed_error",
			expectedError: errors.New("Order must be created via NewOrder"),
		},
		{
			name:          "actor_not_constructed_error",
			expectedError: errors.New("Actor must be created via NewActor factory method"),
		},
		{
			name:          "menu_item_not_constructed_error",
			expectedError: errors.New("MenuItem requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
// The session store validates commands from concurrent requests against the
// same guarded values, so this path runs hot.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
