package guard_test

import (
	"errors"
	"testing"

	"starburger/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	type price struct {
		cents int
		guard guard.ConstructorGuard
	}

	errPriceNotConstructed := errors.New("price must be created via newPrice")

	newPrice := func(cents int) (price, error) {
		if cents < 0 {
			return price{}, errors.New("cents cannot be negative")
		}
		return price{cents: cents, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_object_validates", func(t *testing.T) {
		p, err := newPrice(150)
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPriceNotConstructed))
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var p price
		err := p.guard.Validate(errPriceNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, err)
	})

	t.Run("guard_is_safe_to_copy", func(t *testing.T) {
		p, err := newPrice(100)
		require.NoError(t, err)
		cp := p
		require.NoError(t, cp.guard.Validate(errPriceNotConstructed))
	})
}
