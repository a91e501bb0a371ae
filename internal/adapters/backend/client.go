package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/afyajamii/afya-cli/internal/domain"
	"github.com/afyajamii/afya-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the AfyaJamii backend over HTTP/JSON. It performs no
// retries, no caching and no timeout overrides; failures surface the
// backend's detail message and the user retries manually.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.Backend = (*Client)(nil)

func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// APIError carries the backend's human-readable message, surfaced to the
// user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var response loginResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", loginRequest{
		Username: username,
		Password: password,
	}, "Login failed", &response)
	if err != nil {
		return "", err
	}

	token := response.token()
	if token == "" {
		return "", fmt.Errorf("login response missing token")
	}

	return token, nil
}

func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (string, error) {
	var response messageResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", "", signupRequest{
		Username:    req.Username,
		Email:       req.Email,
		AccountType: string(req.AccountType),
		FullName:    req.FullName,
		Password:    req.Password,
	}, "Signup failed", &response)
	if err != nil {
		return "", err
	}

	return response.Message, nil
}

func (c *Client) SubmitVitals(ctx context.Context, token string, vitals domain.VitalsSubmission) (domain.VitalsResult, error) {
	var response vitalsResponseSchema
	err := c.do(ctx, http.MethodPost, "/api/v1/vitals/submit", token, vitalsRequest{
		Age:            vitals.Age,
		SystolicBP:     vitals.SystolicBP,
		DiastolicBP:    vitals.DiastolicBP,
		BS:             vitals.BloodSugar,
		BodyTemp:       vitals.BodyTemp,
		HeartRate:      vitals.HeartRate,
		BodyTempUnit:   string(vitals.BodyTempUnit),
		PatientHistory: vitals.PatientHistory,
		AccountType:    string(vitals.AccountType),
	}, "Failed to submit vitals", &response)
	if err != nil {
		return domain.VitalsResult{}, err
	}

	return fromVitalsResponse(response), nil
}

func (c *Client) ChatAdvice(ctx context.Context, token, question string) (domain.Advice, error) {
	var response adviceSchema
	err := c.do(ctx, http.MethodPost, "/api/v1/chat/advice", token, chatRequest{
		Question: question,
	}, "Failed to get advice", &response)
	if err != nil {
		return domain.Advice{}, err
	}

	return fromAdvice(response), nil
}

func (c *Client) VitalsHistory(ctx context.Context, token string) ([]domain.VitalsRecord, error) {
	var response []vitalsRecordSchema
	err := c.do(ctx, http.MethodGet, "/api/v1/history/vitals", token, nil, "Failed to fetch vitals history", &response)
	if err != nil {
		return nil, err
	}

	records := make([]domain.VitalsRecord, 0, len(response))
	for _, entry := range response {
		records = append(records, fromVitalsRecord(entry))
	}

	return records, nil
}

func (c *Client) ConversationHistory(ctx context.Context, token string) ([]domain.ConversationTurn, error) {
	var response []conversationSchema
	err := c.do(ctx, http.MethodGet, "/api/v1/history/conversations", token, nil, "Failed to fetch conversations history", &response)
	if err != nil {
		return nil, err
	}

	turns := make([]domain.ConversationTurn, 0, len(response))
	for _, entry := range response {
		turns = append(turns, fromConversation(entry))
	}

	return turns, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body any, fallback string, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("backend request", "method", method, "path", path, "status", response.StatusCode)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &APIError{
			StatusCode: response.StatusCode,
			Message:    errorMessage(data, fallback),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorMessage extracts the backend's detail field from an error body,
// falling back to the per-operation generic message when the body is not the
// expected shape.
func errorMessage(data []byte, fallback string) string {
	var body errorSchema
	if err := json.Unmarshal(data, &body); err == nil && strings.TrimSpace(body.Detail) != "" {
		return body.Detail
	}

	return fallback
}
