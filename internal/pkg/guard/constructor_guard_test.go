package guard_test

import (
	"errors"
	"testing"

	"porter/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("trip must be created via NewTrip")

	t.Run("should pass for a constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the given error for a zero value", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("should fall back to the default error when none is given", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("should survive copies by value", func(t *testing.T) {
		type notification struct {
			title string
			guard guard.ConstructorGuard
		}
		original := notification{title: "SOS Alert Sent", guard: guard.NewConstructorGuard()}

		copied := original

		require.NoError(t, copied.guard.Validate(errNotConstructed))
		assert.Equal(t, original.title, copied.title)
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})

	for range 50 {
		go func() {
			for range 100 {
				assert.NoError(t, g.Validate(nil))
			}
			done <- struct{}{}
		}()
	}

	for range 50 {
		<-done
	}
}
