package rates

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/rates/cache"
)

type countingFetcher struct {
	calls   atomic.Int32
	err     error
	release chan struct{}
}

func (f *countingFetcher) FetchRates(_ context.Context, base string) (convert.RateTable, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return convert.RateTable{}, f.err
	}
	return convert.RateTable{Base: base, Rates: map[string]float64{base: 1, "INR": 83}}, nil
}

func newStore(t *testing.T) *cache.FileStore {
	t.Helper()
	store, err := cache.NewFileStore(t.TempDir(), cache.DefaultTTLSeconds)
	require.NoError(t, err)
	return store
}

func TestCachedFetcher_HitAfterMiss(t *testing.T) {
	next := &countingFetcher{}
	f := NewCachedFetcher(next, newStore(t))

	first, err := f.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	second, err := f.FetchRates(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, int32(1), next.calls.Load())
	assert.Equal(t, first.Rates, second.Rates)
}

func TestCachedFetcher_ErrorsAreNotCached(t *testing.T) {
	next := &countingFetcher{err: &APIError{Base: "USD", Result: "error"}}
	f := NewCachedFetcher(next, newStore(t))

	_, err := f.FetchRates(context.Background(), "USD")
	require.ErrorIs(t, err, ErrAPIResult)
	_, err = f.FetchRates(context.Background(), "USD")
	require.Error(t, err)

	assert.Equal(t, int32(2), next.calls.Load())
}

func TestCachedFetcher_CollapsesConcurrentFetches(t *testing.T) {
	next := &countingFetcher{release: make(chan struct{})}
	f := NewCachedFetcher(next, newStore(t))

	const callers = 5
	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)
	errs := make([]error, callers)
	started.Add(callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			_, errs[i] = f.FetchRates(context.Background(), "EUR")
		}()
	}
	started.Wait()
	close(next.release)
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.LessOrEqual(t, next.calls.Load(), int32(callers))
	assert.GreaterOrEqual(t, next.calls.Load(), int32(1))
}

// blockingFetcher holds every fetch until release closes or its context ends.
type blockingFetcher struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (f *blockingFetcher) FetchRates(ctx context.Context, base string) (convert.RateTable, error) {
	if f.calls.Add(1) == 1 {
		close(f.entered)
	}
	select {
	case <-f.release:
	case <-ctx.Done():
		return convert.RateTable{}, ctx.Err()
	}
	return convert.RateTable{Base: base, Rates: map[string]float64{base: 1, "INR": 83}}, nil
}

func TestCachedFetcher_JoinedCallerSurvivesFirstCallerCancel(t *testing.T) {
	next := &blockingFetcher{entered: make(chan struct{}), release: make(chan struct{})}
	f := NewCachedFetcher(next, newStore(t))

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := f.FetchRates(firstCtx, "EUR")
		firstErr <- err
	}()
	<-next.entered

	type result struct {
		table convert.RateTable
		err   error
	}
	second := make(chan result, 1)
	go func() {
		table, err := f.FetchRates(context.Background(), "EUR")
		second <- result{table, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(next.release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, "EUR", got.table.Base)
}

func TestCachedFetcher_CallerCancelStopsWaiting(t *testing.T) {
	next := &blockingFetcher{entered: make(chan struct{}), release: make(chan struct{})}
	t.Cleanup(func() { close(next.release) })
	f := NewCachedFetcher(next, newStore(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.FetchRates(ctx, "GBP")
		done <- err
	}()
	<-next.entered
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("FetchRates did not return after its context was cancelled")
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, MessageAPIError, Message(&APIError{Result: "error"}))
	assert.Equal(t, MessageNetworkError, Message(errors.New("dial tcp: refused")))
	assert.Equal(t, MessageNetworkError, Message(ErrTransport))
}
