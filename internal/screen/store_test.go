package screen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/keypad"
)

func TestStore(t *testing.T) {
	strategy := NewTemperatureStrategy()
	store := NewStore(NewTemperatureState(), func(s TemperatureState, ev Event) (TemperatureState, error) {
		return Reduce(s, ev, strategy)
	})

	var seen []string
	unsubscribe := store.Subscribe(func(s TemperatureState) {
		seen = append(seen, s.FromValue)
	})

	_, err := store.Dispatch(DigitPressed{D: "1"})
	require.NoError(t, err)
	got, err := store.Dispatch(DigitPressed{D: "0"})
	require.NoError(t, err)

	assert.Equal(t, "10", got.FromValue)
	assert.Equal(t, "50", store.Snapshot().ToValue)
	assert.Equal(t, []string{"1", "10"}, seen)

	unsubscribe()
	_, err = store.Dispatch(DigitPressed{D: "0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "10"}, seen)
	assert.Equal(t, "100", store.Snapshot().FromValue)
}

func TestStore_RejectedEventNotPublished(t *testing.T) {
	strategy := SpeedStrategy{Precision: 4, Limit: 2}
	store := NewStore(NewSpeedState(), func(s SpeedState, ev Event) (SpeedState, error) {
		return Reduce(s, ev, strategy)
	})

	var calls int
	store.Subscribe(func(SpeedState) { calls++ })

	for _, d := range []string{"1", "2"} {
		_, err := store.Dispatch(DigitPressed{D: d})
		require.NoError(t, err)
	}
	got, err := store.Dispatch(DigitPressed{D: "3"})

	var maxErr *keypad.MaxDigitsError
	require.True(t, errors.As(err, &maxErr))
	assert.Equal(t, "12", got.FromValue)
	assert.Equal(t, 2, calls)
}

func TestStore_SubscribersNotifiedInOrder(t *testing.T) {
	store := NewStore(0, func(s, ev int) (int, error) { return s + ev, nil })

	var order []string
	store.Subscribe(func(int) { order = append(order, "a") })
	unsubB := store.Subscribe(func(int) { order = append(order, "b") })
	store.Subscribe(func(int) { order = append(order, "c") })

	_, _ = store.Dispatch(1)
	unsubB()
	_, _ = store.Dispatch(1)

	assert.Equal(t, []string{"a", "b", "c", "a", "c"}, order)
	assert.Equal(t, 2, store.Snapshot())
}

func TestStore_UnsubscribeFromSubscriber(t *testing.T) {
	store := NewStore(0, func(s, ev int) (int, error) { return s + ev, nil })

	var seen []int
	var unsubscribe func()
	unsubscribe = store.Subscribe(func(v int) {
		seen = append(seen, v)
		unsubscribe()
	})

	_, _ = store.Dispatch(1)
	_, _ = store.Dispatch(1)

	assert.Equal(t, []int{1}, seen)
	assert.Equal(t, 2, store.Snapshot())
}
