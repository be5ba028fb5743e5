package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/testing/leaktest"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	n := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(n) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []DeadLetterEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	return entries
}

func testEvent() Event {
	return NewRewardClaimedEvent(domain.RewardClaimedPayload{UserID: "u1", VideoID: "VID1"})
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), testEvent()))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt == 1 }}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), testEvent())

	assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 2, 5*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), testEvent())

	// initial attempt plus two retries
	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		info, err := os.Stat(path)
		return err == nil && info.Size() > 0
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, RewardClaimed, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, "mock publish error", entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), testEvent())
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	assert.Len(t, readDeadLetters(t, path), 1)
}

func TestResilientPublisher_PublishAfterShutdown(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{}

	rp, err := NewResilientPublisher(bus, 1, time.Millisecond, path)
	require.NoError(t, err)
	require.NoError(t, rp.Shutdown(context.Background()))

	// successful deliveries never touch the closed dead-letter file
	assert.NoError(t, rp.Publish(context.Background(), testEvent()))
	assert.Equal(t, 1, bus.CallCount())
}

func TestNewResilientPublisher_BadPath(t *testing.T) {
	_, err := NewResilientPublisher(&mockBus{}, 1, time.Millisecond, t.TempDir()+"/missing/dir/dl.jsonl")
	assert.Error(t, err)
}

func TestResilientPublisher_ShutdownStopsWorker(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		bus := &mockBus{shouldFail: func(attempt int) bool { return attempt == 1 }}
		rp, err := NewResilientPublisher(bus, 3, time.Millisecond, t.TempDir()+"/deadletter.jsonl")
		require.NoError(t, err)

		rp.PublishWithRetry(context.Background(), testEvent())
		assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 5*time.Millisecond)
		require.NoError(t, rp.Shutdown(context.Background()))
	})
}
