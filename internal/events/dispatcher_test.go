package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventAccountCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventPasswordChanged, func(_ context.Context, e Event) error {
		t.Error("wrong event type delivered")
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventAccountCreated,
		Timestamp: time.Now(),
		Payload:   AccountCreatedPayload{AccountID: 7, PhoneNumber: "0987654321", Enabled: true},
	}
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(AccountCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, int64(7), payload.AccountID)
}

func TestDispatcherHandlerErrorsDoNotPropagate(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(EventAccountCreated, func(context.Context, Event) error {
		calls++
		return errors.New("handler failed")
	})
	d.Subscribe(EventAccountCreated, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventAccountCreated})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventAccountCreated}))
}
