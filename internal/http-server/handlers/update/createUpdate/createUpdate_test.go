package createUpdate

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/cache"
	"eventPlanner/internal/codec"
	"eventPlanner/internal/http-server/handlers/update/createUpdate/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"
	"eventPlanner/internal/relay"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var owned = &models.Event{ID: "evt1", Pubkey: "owner", EventData: models.EventData{Title: "Picnic", StartDate: "2025-06-11T12:00:00Z"}}

func TestCreateUpdateHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UpdatePoster)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Announcement by default",
			requestBody: `{"content":"Doors at 6"}`,
			mockSetup: func(m *mocks.UpdatePoster) {
				m.On("GetEvent", mock.Anything, "evt1").Return(owned, nil)
				m.On("PostUpdate", mock.Anything, "evt1", "owner", "Doors at 6", models.UpdateAnnouncement).Return("update_1_aa", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","update_id":"update_1_aa","title":"Update Posted"}`,
		},
		{
			name:        "Cancellation",
			requestBody: `{"content":"Rained out","type":"cancellation"}`,
			mockSetup: func(m *mocks.UpdatePoster) {
				m.On("GetEvent", mock.Anything, "evt1").Return(owned, nil)
				m.On("PostUpdate", mock.Anything, "evt1", "owner", "Rained out", models.UpdateCancellation).Return("update_2_bb", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","update_id":"update_2_bb","title":"Event Cancelled"}`,
		},
		{
			name:        "Creator in body is ignored",
			requestBody: `{"creatorId":"intruder","content":"Cancelled!","type":"cancellation"}`,
			mockSetup: func(m *mocks.UpdatePoster) {
				m.On("GetEvent", mock.Anything, "evt1").Return(owned, nil)
				m.On("PostUpdate", mock.Anything, "evt1", "owner", "Cancelled!", models.UpdateCancellation).Return("", planner.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"only the event creator can post updates"}`,
		},
		{
			name:           "Unknown type",
			requestBody:    `{"content":"x","type":"rumor"}`,
			mockSetup:      func(m *mocks.UpdatePoster) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Type")
			},
		},
		{
			name:           "Missing content",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.UpdatePoster) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Content is a required field")
			},
		},
		{
			name:        "Event not found",
			requestBody: `{"content":"hi"}`,
			mockSetup: func(m *mocks.UpdatePoster) {
				m.On("GetEvent", mock.Anything, "evt1").Return(nil, planner.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Event lookup failure",
			requestBody: `{"content":"hi"}`,
			mockSetup: func(m *mocks.UpdatePoster) {
				m.On("GetEvent", mock.Anything, "evt1").Return(nil, errors.New("relay down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event"}`,
		},
		{
			name:        "Not logged in",
			requestBody: `{"content":"hi"}`,
			mockSetup: func(m *mocks.UpdatePoster) {
				m.On("GetEvent", mock.Anything, "evt1").Return(owned, nil)
				m.On("PostUpdate", mock.Anything, "evt1", "owner", "hi", models.UpdateAnnouncement).Return("", planner.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "Publish failure",
			requestBody: `{"content":"hi"}`,
			mockSetup: func(m *mocks.UpdatePoster) {
				m.On("GetEvent", mock.Anything, "evt1").Return(owned, nil)
				m.On("PostUpdate", mock.Anything, "evt1", "owner", "hi", models.UpdateAnnouncement).Return("", errors.New("rejected"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to post update"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			poster := mocks.NewUpdatePoster(t)
			tc.mockSetup(poster)

			router := chi.NewRouter()
			router.Post("/events/{id}/updates", New(logger, poster))

			req, err := http.NewRequest(http.MethodPost, "/events/evt1/updates", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestOnlyOwnerCanPostUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	owner, err := relay.GenerateSigner()
	require.NoError(t, err)
	other, err := relay.GenerateSigner()
	require.NoError(t, err)

	draft, err := codec.BuildEvent(models.EventData{Title: "Picnic", StartDate: "2025-06-11T12:00:00Z"}, "evt1", nil, "")
	require.NoError(t, err)
	signed, err := owner.Finalize(draft)
	require.NoError(t, err)

	mem := relay.NewMemory(other)
	require.True(t, mem.Store(&signed))

	svc := planner.New(slogdiscard.NewDiscardLogger(), mem, cache.New(), 0)

	router := chi.NewRouter()
	router.Post("/events/{id}/updates", New(slogdiscard.NewDiscardLogger(), svc))

	body := `{"creatorId":"` + other.Pubkey() + `","content":"Cancelled","type":"cancellation"}`
	req, err := http.NewRequest(http.MethodPost, "/events/evt1/updates", bytes.NewBufferString(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)

	updates, err := svc.EventUpdates(ctx, "evt1")
	require.NoError(t, err)
	assert.Empty(t, updates)
}
