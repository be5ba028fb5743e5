package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Ycine_Go/internal/logger"
)

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus so that a failed subscriber never fails the
// ledger operation that emitted the event. Failures are retried in the
// background with exponential backoff, then dead-lettered.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown chan struct{}
	once      sync.Once
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewResilientPublisher starts a publisher with its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// Publish satisfies Publisher. It always returns nil once the event is accepted.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry attempts delivery now and queues a retry on failure
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	rp.enqueue(retryEntry{event: event, attempts: 1, lastErr: err})
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case <-rp.shutdown:
			rp.drain()
			return
		case entry := <-rp.retryQueue:
			rp.retry(entry)
		}
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	if entry.attempts > rp.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempts)
		rp.writeDeadLetter(entry)
		return
	}

	timer := time.NewTimer(CalculateRetryDelay(rp.retryDelay, entry.attempts))
	select {
	case <-rp.shutdown:
		timer.Stop()
		rp.writeDeadLetter(entry)
		return
	case <-timer.C:
	}

	err := rp.bus.Publish(context.Background(), entry.event)
	entry.attempts++
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempts", entry.attempts)
		return
	}

	entry.lastErr = err
	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempts,
		"error", err)

	// Requeue without blocking the worker on its own channel.
	select {
	case rp.retryQueue <- entry:
	default:
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) drain() {
	for {
		select {
		case entry := <-rp.retryQueue:
			logger.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
			rp.writeDeadLetter(entry)
		default:
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// Shutdown stops the retry worker, dead-letters anything still queued and
// closes the dead-letter file.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.once.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	var err error
	rp.closeOnce.Do(func() {
		if rp.deadLetter != nil {
			err = rp.deadLetter.Close()
		}
	})
	return err
}
