package getRSVPs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/http-server/handlers/rsvp/getRSVPs/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/models"
	"eventPlanner/internal/planner"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, getter RSVPGetter, url string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Get("/events/{id}/rsvps", New(slogdiscard.NewDiscardLogger(), getter))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))

	return rr
}

func TestGetRSVPs(t *testing.T) {
	t.Parallel()

	records := []models.RSVPRecord{
		{EventID: "evt1", UserID: "u1", RSVP: models.RSVP{Status: models.StatusYes, Attendees: 3}},
		{EventID: "evt1", UserID: "u2", RSVP: models.RSVP{Status: models.StatusMaybe, Attendees: 1}},
	}

	getter := mocks.NewRSVPGetter(t)
	getter.On("EventRSVPs", mock.Anything, "evt1", "owner").Return(planner.Summarize(records), nil)

	rr := serve(t, getter, "/events/evt1/rsvps?creator=owner")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp RSVPsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Len(t, resp.RSVPs, 2)
	assert.Equal(t, models.RSVPCounts{Yes: 3, Maybe: 1}, resp.Counts)
	assert.Equal(t, 4, resp.Total)
}

func TestGetRSVPsRequiresCreator(t *testing.T) {
	t.Parallel()

	rr := serve(t, mocks.NewRSVPGetter(t), "/events/evt1/rsvps")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"event id and creator are required"}`, rr.Body.String())
}

func TestGetRSVPsFailure(t *testing.T) {
	t.Parallel()

	getter := mocks.NewRSVPGetter(t)
	getter.On("EventRSVPs", mock.Anything, "evt1", "owner").Return(nil, errors.New("closed"))

	rr := serve(t, getter, "/events/evt1/rsvps?creator=owner")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
