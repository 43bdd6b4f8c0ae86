package service

import (
	"context"
	"encoding/json"
	"testing"

	"danubio/internal/events"
	"danubio/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInquiryPublishesEvent(t *testing.T) {
	store := new(mockStore)
	logger := zerolog.Nop()
	bus := events.NewEventBus()

	var published []events.InquiryEventPayload
	bus.Subscribe(events.EventInquiryCreated, func(event *events.Event) error {
		var payload events.InquiryEventPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		published = append(published, payload)
		return nil
	})

	store.On("CreateInquiry", mock.Anything, mock.Anything).
		Return(&models.Inquiry{ID: 3, Email: "clara@example.com", Status: models.InquiryStatusNew}, nil)

	s := NewInquiryService(store, bus, &logger)

	inquiry, err := s.CreateInquiry(context.Background(), models.NewInquiry{
		Name:    "Clara",
		Email:   "clara@example.com",
		Message: "Winter cruises?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)

	require.Len(t, published, 1)
	assert.Equal(t, int64(3), published[0].InquiryID)
	store.AssertExpectations(t)
}

func TestInquiryUpdateStatus(t *testing.T) {
	store := new(mockStore)
	logger := zerolog.Nop()

	store.On("UpdateInquiryStatus", mock.Anything, int64(3), models.InquiryStatusResponded).
		Return(&models.Inquiry{ID: 3, Status: models.InquiryStatusResponded}, nil)

	s := NewInquiryService(store, nil, &logger)

	inquiry, err := s.UpdateStatus(context.Background(), 3, models.InquiryStatusResponded)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusResponded, inquiry.Status)

	_, err = s.UpdateStatus(context.Background(), 3, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
