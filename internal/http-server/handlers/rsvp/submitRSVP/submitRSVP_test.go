package submitRSVP

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/http-server/handlers/rsvp/submitRSVP/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitRSVPHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.RSVPSubmitter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Accept",
			requestBody: `{"creatorId":"owner","status":"yes","attendees":2,"comment":"bringing a friend"}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("SubmitRSVP", mock.Anything, "evt1", "owner", models.RSVP{
					Status:    models.StatusYes,
					Attendees: 2,
					Comment:   "bringing a friend",
				}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Your RSVP was successfully accepted"}`,
		},
		{
			name:        "Decline",
			requestBody: `{"creatorId":"owner","status":"no"}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("SubmitRSVP", mock.Anything, "evt1", "owner", models.RSVP{Status: models.StatusNo}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Your RSVP was successfully declined"}`,
		},
		{
			name:        "Maybe",
			requestBody: `{"creatorId":"owner","status":"maybe"}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("SubmitRSVP", mock.Anything, "evt1", "owner", models.RSVP{Status: models.StatusMaybe}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Your RSVP was successfully marked as maybe"}`,
		},
		{
			name:           "Unknown status",
			requestBody:    `{"creatorId":"owner","status":"perhaps"}`,
			mockSetup:      func(m *mocks.RSVPSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Status")
			},
		},
		{
			name:           "Negative attendees",
			requestBody:    `{"creatorId":"owner","status":"yes","attendees":-1}`,
			mockSetup:      func(m *mocks.RSVPSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Attendees")
			},
		},
		{
			name:           "Missing creator",
			requestBody:    `{"status":"yes"}`,
			mockSetup:      func(m *mocks.RSVPSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "CreatorID")
			},
		},
		{
			name:        "Not logged in",
			requestBody: `{"creatorId":"owner","status":"yes"}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("SubmitRSVP", mock.Anything, "evt1", "owner", models.RSVP{Status: models.StatusYes}).Return(planner.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"user not logged in"}`,
		},
		{
			name:        "Publish failure",
			requestBody: `{"creatorId":"owner","status":"yes"}`,
			mockSetup: func(m *mocks.RSVPSubmitter) {
				m.On("SubmitRSVP", mock.Anything, "evt1", "owner", models.RSVP{Status: models.StatusYes}).Return(errors.New("rejected"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to submit rsvp"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			submitter := mocks.NewRSVPSubmitter(t)
			tc.mockSetup(submitter)

			router := chi.NewRouter()
			router.Post("/events/{id}/rsvp", New(logger, submitter))

			req, err := http.NewRequest(http.MethodPost, "/events/evt1/rsvp", bytes.NewBufferString(tc.requestBody))
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
