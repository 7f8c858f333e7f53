package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 5 * time.Second}
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, success bool, message string, data any) {
	t.Helper()

	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"success":    success,
		"statusCode": status,
		"message":    message,
		"data":       json.RawMessage(encoded),
	}))
}

func TestLoginDecodesCredentialAndAccount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "user@example.com", body["email"])
		require.Equal(t, "password123", body["password"])

		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"token": "token-xyz",
			"account": map[string]any{
				"id":    "acc-1",
				"email": "user@example.com",
				"profile": map[string]any{
					"age": 28, "weight": 70, "height": 175, "smoking": false, "drinking": true,
				},
			},
		})
	})

	result, err := client.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "token-xyz", result.Credential)
	assert.Equal(t, domain.AccountID("acc-1"), result.Account.ID)
	assert.True(t, result.Account.Profile.Complete())
	assert.True(t, result.Account.Profile.Drinking)
}

func TestLoginRejectionMapsToInvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, false, "invalid email or password", nil)
	})

	_, err := client.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestRegisterRejectionCarriesReason(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusConflict, false, "email already registered", nil)
	})

	err := client.Register(context.Background(), "user@example.com", "password123")
	require.ErrorIs(t, err, domain.ErrRegistrationRejected)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestAuthenticatedCallUnauthorizedStatusNormalized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetProfile(context.Background(), "stale-token")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = client.Score(context.Background(), "stale-token", domain.AssessmentDiabetes, map[string]int{"fatigue": 10})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateProfileBadRequestMapsToValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		writeEnvelope(t, w, http.StatusBadRequest, false, "age must be positive", nil)
	})

	_, err := client.UpdateProfile(context.Background(), "token", domain.Profile{Age: -1})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestScoreSortsFactorsAndParsesTimestamp(t *testing.T) {
	captured := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predict/diabetes", r.URL.Path)
		require.Equal(t, "Bearer token-xyz", r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"percentage": 57,
			"riskFactors": []map[string]any{
				{"name": "fatigue", "impact": 9},
				{"name": "frequent_urination", "impact": 31},
			},
			"timestamp": captured.Unix(),
		})
	})

	result, err := client.Score(context.Background(), "token-xyz", domain.AssessmentDiabetes, map[string]int{"frequent_urination": 80})
	require.NoError(t, err)

	assert.Equal(t, 57, result.Percentage)
	require.Len(t, result.RiskFactors, 2)
	assert.Equal(t, "frequent_urination", result.RiskFactors[0].Name)
	assert.Equal(t, captured, result.CapturedAt)
}

func TestScoreIncompleteResponseIsTotalFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusOK, true, "", map[string]any{
			"percentage":  57,
			"riskFactors": []map[string]any{},
		})
	})

	_, err := client.Score(context.Background(), "token", domain.AssessmentDiabetes, map[string]int{"fatigue": 10})
	require.ErrorIs(t, err, domain.ErrService)
}

func TestTransportFailureMapsToServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := &Client{BaseURL: server.URL, RequestTimeout: time.Second}
	server.Close()

	_, err := client.GetHistory(context.Background(), "token")
	require.ErrorIs(t, err, domain.ErrService)
}

func TestGetHistoryDecodesEntries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/predictions/history", r.URL.Path)

		writeEnvelope(t, w, http.StatusOK, true, "", []map[string]any{
			{"disease": "diabetes", "date": int64(1756500000), "percentage": 62},
			{"disease": "thyroid", "date": int64(1756400000), "percentage": 18},
		})
	})

	entries, err := client.GetHistory(context.Background(), "token")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.AssessmentDiabetes, entries[0].Disease)
	assert.Equal(t, 62, entries[0].Percentage)
	assert.Equal(t, domain.TierLow, domain.TierFor(entries[1].Percentage))
}

func TestNonEnvelopeResponseMapsToServiceError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.GetHistory(context.Background(), "token")
	require.ErrorIs(t, err, domain.ErrService)
}
