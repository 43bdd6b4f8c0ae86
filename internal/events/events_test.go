package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishJSONReachesSubscribers(t *testing.T) {
	bus := NewEventBus()

	var got []BookingEventPayload
	bus.Subscribe(EventBookingCreated, func(event *Event) error {
		var payload BookingEventPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		got = append(got, payload)
		return nil
	})

	err := bus.PublishJSON(EventBookingCreated, BookingEventPayload{
		BookingID:  7,
		ItemID:     1,
		ItemType:   "destination",
		Status:     "pending",
		Guests:     2,
		TotalPrice: 534,
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].BookingID)
	assert.Equal(t, int64(534), got[0].TotalPrice)
}

func TestPublishIgnoresOtherTypes(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	bus.Subscribe(EventInquiryCreated, func(event *Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.PublishJSON(EventBookingCreated, BookingEventPayload{BookingID: 1}))
	assert.Zero(t, calls)

	require.NoError(t, bus.PublishJSON(EventInquiryCreated, InquiryEventPayload{InquiryID: 2}))
	assert.Equal(t, 1, calls)
}

func TestNilBusPublishJSON(t *testing.T) {
	var bus *EventBus
	assert.NoError(t, bus.PublishJSON(EventBookingCreated, nil))
}
