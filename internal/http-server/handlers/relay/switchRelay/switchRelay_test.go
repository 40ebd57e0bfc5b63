package switchRelay

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventPlanner/internal/http-server/handlers/relay/switchRelay/mocks"
	"eventPlanner/internal/lib/logger/handlers/slogdiscard"
	"eventPlanner/internal/relay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSwitchRelayHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.RelaySwitcher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"url":"wss://relay.primal.net"}`,
			mockSetup: func(m *mocks.RelaySwitcher) {
				m.On("Switch", mock.Anything, "wss://relay.primal.net").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","current":"wss://relay.primal.net"}`,
		},
		{
			name:        "Not a preset",
			requestBody: `{"url":"wss://evil.example"}`,
			mockSetup: func(m *mocks.RelaySwitcher) {
				m.On("Switch", mock.Anything, "wss://evil.example").Return(fmt.Errorf("relay.Switch: %w", relay.ErrUnknownRelay))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"relay is not one of the configured presets"}`,
		},
		{
			name:        "Dial failure",
			requestBody: `{"url":"wss://relay.primal.net"}`,
			mockSetup: func(m *mocks.RelaySwitcher) {
				m.On("Switch", mock.Anything, "wss://relay.primal.net").Return(errors.New("dial tcp: timeout"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"failed to connect to relay"}`,
		},
		{
			name:           "Missing url",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.RelaySwitcher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field URL is a required field"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.RelaySwitcher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			switcher := mocks.NewRelaySwitcher(t)
			tc.mockSetup(switcher)

			req, err := http.NewRequest(http.MethodPut, "/relay", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, switcher).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
