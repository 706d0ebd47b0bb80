package event

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otherEvent struct{}

func (otherEvent) EventName() string { return "other" }

func TestBusPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivers to subscribers in order", func(t *testing.T) {
		bus := NewBus()
		var calls []string
		bus.Subscribe(ExpenseRecordedName, func(ctx context.Context, evt Event) error {
			calls = append(calls, "first")
			return nil
		})
		bus.Subscribe(ExpenseRecordedName, func(ctx context.Context, evt Event) error {
			e, ok := evt.(ExpenseRecorded)
			require.True(t, ok)
			assert.Equal(t, "Food", e.Category)
			calls = append(calls, "second")
			return nil
		})

		err := bus.Publish(ctx, ExpenseRecorded{UserID: 1, Category: "Food", Amount: decimal.NewFromInt(20)})

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("No subscribers is not an error", func(t *testing.T) {
		bus := NewBus()
		assert.NoError(t, bus.Publish(ctx, otherEvent{}))
	})

	t.Run("Only matching names are delivered", func(t *testing.T) {
		bus := NewBus()
		called := false
		bus.Subscribe(ExpenseRecordedName, func(ctx context.Context, evt Event) error {
			called = true
			return nil
		})

		require.NoError(t, bus.Publish(ctx, otherEvent{}))
		assert.False(t, called)
	})

	t.Run("Handler error stops delivery", func(t *testing.T) {
		bus := NewBus()
		boom := errors.New("boom")
		secondCalled := false
		bus.Subscribe(ExpenseRecordedName, func(ctx context.Context, evt Event) error {
			return boom
		})
		bus.Subscribe(ExpenseRecordedName, func(ctx context.Context, evt Event) error {
			secondCalled = true
			return nil
		})

		err := bus.Publish(ctx, ExpenseRecorded{})

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.False(t, secondCalled)
	})

	t.Run("Handler sees the publisher context", func(t *testing.T) {
		type key struct{}
		bus := NewBus()
		var got any
		bus.Subscribe(ExpenseRecordedName, func(ctx context.Context, evt Event) error {
			got = ctx.Value(key{})
			return nil
		})

		require.NoError(t, bus.Publish(context.WithValue(ctx, key{}, "tx"), ExpenseRecorded{}))
		assert.Equal(t, "tx", got)
	})
}
