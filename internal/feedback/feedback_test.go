package feedback

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-mirror/internal/types"
)

// fakeEventStore is an in-memory EventStore for tests.
type fakeEventStore struct {
	events        map[uuid.UUID]*types.RewriteEvent
	feedbackCount int

	setCalls int
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: make(map[uuid.UUID]*types.RewriteEvent)}
}

func (s *fakeEventStore) addEvent(userID uuid.UUID) uuid.UUID {
	id := uuid.New()
	s.events[id] = &types.RewriteEvent{ID: id, UserID: userID}
	return id
}

func (s *fakeEventStore) GetRewriteEvent(_ context.Context, userID, eventID uuid.UUID) (*types.RewriteEvent, error) {
	event, ok := s.events[eventID]
	if !ok || event.UserID != userID {
		return nil, nil
	}
	return event, nil
}

func (s *fakeEventStore) SetEventFeedback(_ context.Context, eventID uuid.UUID, action types.FeedbackAction, editedText *string) error {
	s.setCalls++
	event := s.events[eventID]
	event.UserAction = &action
	event.UserEditedText = editedText
	s.feedbackCount++
	return nil
}

func (s *fakeEventStore) CountFeedback(_ context.Context, _ uuid.UUID) (int, error) {
	return s.feedbackCount, nil
}

func TestRecordAccept(t *testing.T) {
	store := newFakeEventStore()
	userID := uuid.New()
	eventID := store.addEvent(userID)

	result, err := Record(context.Background(), store, userID, eventID, types.ActionAccept, "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFeedbackCount)
	assert.False(t, result.RefinementRecommended)
	assert.Equal(t, types.ActionAccept, *store.events[eventID].UserAction)
	assert.Nil(t, store.events[eventID].UserEditedText, "edited text only stored for edit actions")
}

func TestRecordEdit(t *testing.T) {
	store := newFakeEventStore()
	userID := uuid.New()
	eventID := store.addEvent(userID)

	_, err := Record(context.Background(), store, userID, eventID, types.ActionEdit, "my corrected version")
	require.NoError(t, err)

	require.NotNil(t, store.events[eventID].UserEditedText)
	assert.Equal(t, "my corrected version", *store.events[eventID].UserEditedText)
}

func TestRecordEditRequiresText(t *testing.T) {
	store := newFakeEventStore()
	userID := uuid.New()
	eventID := store.addEvent(userID)

	_, err := Record(context.Background(), store, userID, eventID, types.ActionEdit, "")

	var editErr *EditTextRequiredError
	assert.ErrorAs(t, err, &editErr)
	assert.Zero(t, store.setCalls, "nothing is written on validation failure")
}

func TestRecordInvalidAction(t *testing.T) {
	store := newFakeEventStore()
	userID := uuid.New()
	eventID := store.addEvent(userID)

	_, err := Record(context.Background(), store, userID, eventID, types.FeedbackAction("applaud"), "")

	var actionErr *InvalidActionError
	assert.ErrorAs(t, err, &actionErr)
}

func TestRecordEventNotFound(t *testing.T) {
	store := newFakeEventStore()

	_, err := Record(context.Background(), store, uuid.New(), uuid.New(), types.ActionAccept, "")

	var notFoundErr *EventNotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestRecordOtherUsersEventNotFound(t *testing.T) {
	store := newFakeEventStore()
	eventID := store.addEvent(uuid.New())

	_, err := Record(context.Background(), store, uuid.New(), eventID, types.ActionAccept, "")

	var notFoundErr *EventNotFoundError
	assert.ErrorAs(t, err, &notFoundErr, "events are scoped to their owner")
}

func TestRecordRejectsResubmission(t *testing.T) {
	store := newFakeEventStore()
	userID := uuid.New()
	eventID := store.addEvent(userID)

	_, err := Record(context.Background(), store, userID, eventID, types.ActionAccept, "")
	require.NoError(t, err)

	_, err = Record(context.Background(), store, userID, eventID, types.ActionReject, "")

	var recordedErr *AlreadyRecordedError
	assert.ErrorAs(t, err, &recordedErr)
	assert.Equal(t, types.ActionAccept, *store.events[eventID].UserAction, "first action stands")
}

func TestRecordRefinementThreshold(t *testing.T) {
	store := newFakeEventStore()
	userID := uuid.New()

	var result *Result
	var err error
	for i := 0; i < RefinementThreshold; i++ {
		eventID := store.addEvent(userID)
		result, err = Record(context.Background(), store, userID, eventID, types.ActionReject, "")
		require.NoError(t, err)

		if i < RefinementThreshold-1 {
			assert.False(t, result.RefinementRecommended, "below threshold")
		}
	}

	assert.Equal(t, RefinementThreshold, result.TotalFeedbackCount)
	assert.True(t, result.RefinementRecommended, "at threshold")
}
