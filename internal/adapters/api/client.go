// Package api implements the remote service facade over the HTTP
// surface of the scoring backend. It is the only place transport
// failures exist: every outcome is normalized into the domain error
// kinds before it reaches the application layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/kriju0726/HealiFy/internal/ports"
)

const maxResponseBytes = 1 << 20

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.RemoteService = (*Client)(nil)

// envelope is the common response wrapper of the backend. A response
// with success == false propagates its message as the failure detail.
type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profilePayload struct {
	Age      int  `json:"age"`
	Weight   int  `json:"weight"`
	Height   int  `json:"height"`
	Smoking  bool `json:"smoking"`
	Drinking bool `json:"drinking"`
}

type accountPayload struct {
	ID      string          `json:"id"`
	Email   string          `json:"email"`
	Profile *profilePayload `json:"profile"`
}

type loginPayload struct {
	Token   string         `json:"token"`
	Account accountPayload `json:"account"`
}

type scoreRequestPayload struct {
	Answers map[string]int `json:"answers"`
}

type riskFactorPayload struct {
	Name   string `json:"name"`
	Impact int    `json:"impact"`
}

type predictionPayload struct {
	Percentage  int                 `json:"percentage"`
	RiskFactors []riskFactorPayload `json:"riskFactors"`
	Timestamp   int64               `json:"timestamp"`
}

type historyEntryPayload struct {
	Disease    string `json:"disease"`
	Date       int64  `json:"date"`
	Percentage int    `json:"percentage"`
}

func (c *Client) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	body := credentialsPayload{Email: email, Password: password}

	env, status, err := c.do(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return ports.LoginResult{}, err
	}
	if !env.Success {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return ports.LoginResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, failureDetail(env, status))
		}
		return ports.LoginResult{}, fmt.Errorf("%w: login: %s", domain.ErrService, failureDetail(env, status))
	}

	var payload loginPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return ports.LoginResult{}, fmt.Errorf("%w: decode login response: %v", domain.ErrService, err)
	}
	if payload.Token == "" {
		return ports.LoginResult{}, fmt.Errorf("%w: login response missing token", domain.ErrService)
	}

	return ports.LoginResult{
		Credential: payload.Token,
		Account:    accountFromPayload(payload.Account),
	}, nil
}

func (c *Client) Register(ctx context.Context, email, password string) error {
	body := credentialsPayload{Email: email, Password: password}

	env, status, err := c.do(ctx, http.MethodPost, "/auth/register", "", body)
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", domain.ErrRegistrationRejected, failureDetail(env, status))
	}

	return nil
}

func (c *Client) GetProfile(ctx context.Context, credential string) (domain.Profile, error) {
	env, status, err := c.do(ctx, http.MethodGet, "/profile", credential, nil)
	if err != nil {
		return domain.Profile{}, err
	}
	if !env.Success {
		return domain.Profile{}, fmt.Errorf("%w: fetch profile: %s", domain.ErrService, failureDetail(env, status))
	}

	var payload profilePayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: decode profile response: %v", domain.ErrService, err)
	}

	return profileFromPayload(payload), nil
}

func (c *Client) UpdateProfile(ctx context.Context, credential string, profile domain.Profile) (domain.Profile, error) {
	body := profileToPayload(profile)

	env, status, err := c.do(ctx, http.MethodPut, "/profile", credential, body)
	if err != nil {
		return domain.Profile{}, err
	}
	if !env.Success {
		if status == http.StatusBadRequest {
			return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrValidation, failureDetail(env, status))
		}
		return domain.Profile{}, fmt.Errorf("%w: update profile: %s", domain.ErrService, failureDetail(env, status))
	}

	var payload profilePayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: decode profile response: %v", domain.ErrService, err)
	}

	return profileFromPayload(payload), nil
}

func (c *Client) Score(ctx context.Context, credential string, typ domain.AssessmentType, answers map[string]int) (domain.PredictionResult, error) {
	body := scoreRequestPayload{Answers: answers}

	env, status, err := c.do(ctx, http.MethodPost, "/predict/"+url.PathEscape(string(typ)), credential, body)
	if err != nil {
		return domain.PredictionResult{}, err
	}
	if !env.Success {
		return domain.PredictionResult{}, fmt.Errorf("%w: score: %s", domain.ErrService, failureDetail(env, status))
	}

	var payload predictionPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("%w: decode prediction response: %v", domain.ErrService, err)
	}
	// A prediction is all-or-nothing: a response without both the
	// percentage and its factors is a total failure, never a partial
	// result.
	if payload.Percentage < 0 || payload.Percentage > 100 || len(payload.RiskFactors) == 0 {
		return domain.PredictionResult{}, fmt.Errorf("%w: prediction response incomplete", domain.ErrService)
	}

	factors := make([]domain.RiskFactor, 0, len(payload.RiskFactors))
	for _, factor := range payload.RiskFactors {
		factors = append(factors, domain.RiskFactor{Name: factor.Name, Impact: factor.Impact})
	}
	domain.SortRiskFactors(factors)

	return domain.PredictionResult{
		Percentage:  payload.Percentage,
		RiskFactors: factors,
		CapturedAt:  time.Unix(payload.Timestamp, 0).UTC(),
	}, nil
}

func (c *Client) GetHistory(ctx context.Context, credential string) ([]domain.HistoryEntry, error) {
	env, status, err := c.do(ctx, http.MethodGet, "/predictions/history", credential, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: fetch history: %s", domain.ErrService, failureDetail(env, status))
	}

	var payload []historyEntryPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode history response: %v", domain.ErrService, err)
	}

	entries := make([]domain.HistoryEntry, 0, len(payload))
	for _, entry := range payload {
		entries = append(entries, domain.HistoryEntry{
			Disease:    domain.AssessmentType(entry.Disease),
			Date:       time.Unix(entry.Date, 0).UTC(),
			Percentage: entry.Percentage,
		})
	}

	return entries, nil
}

// do performs one request and decodes the envelope. Credential
// rejections short-circuit to domain.ErrUnauthorized here so callers
// only deal with envelope semantics.
func (c *Client) do(ctx context.Context, method, path, credential string, body any) (envelope, int, error) {
	endpoint, err := buildEndpoint(c.BaseURL, path)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("%w: %v", domain.ErrService, err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return envelope{}, 0, fmt.Errorf("%w: encode request body: %v", domain.ErrService, err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("%w: create request: %v", domain.ErrService, err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		request.Header.Set("Authorization", "Bearer "+credential)
	}

	response, err := c.httpClient().Do(request)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("%w: perform request: %v", domain.ErrService, err)
	}
	defer func() { _ = response.Body.Close() }()

	if credential != "" && (response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden) {
		return envelope{}, response.StatusCode, fmt.Errorf("%w: status %d", domain.ErrUnauthorized, response.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return envelope{}, response.StatusCode, fmt.Errorf("%w: read response: %v", domain.ErrService, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, response.StatusCode, fmt.Errorf("%w: status %d: %s", domain.ErrService, response.StatusCode, strings.TrimSpace(string(raw)))
	}

	return env, response.StatusCode, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}

func failureDetail(env envelope, status int) string {
	if env.Message != "" {
		return env.Message
	}

	return fmt.Sprintf("status %d", status)
}

func buildEndpoint(baseURL, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}

func accountFromPayload(payload accountPayload) domain.Account {
	account := domain.Account{
		ID:    domain.AccountID(payload.ID),
		Email: payload.Email,
	}
	if payload.Profile != nil {
		account.Profile = profileFromPayload(*payload.Profile)
	}

	return account
}

func profileFromPayload(payload profilePayload) domain.Profile {
	return domain.Profile{
		Age:      payload.Age,
		Weight:   payload.Weight,
		Height:   payload.Height,
		Smoking:  payload.Smoking,
		Drinking: payload.Drinking,
	}
}

func profileToPayload(profile domain.Profile) profilePayload {
	return profilePayload{
		Age:      profile.Age,
		Weight:   profile.Weight,
		Height:   profile.Height,
		Smoking:  profile.Smoking,
		Drinking: profile.Drinking,
	}
}
