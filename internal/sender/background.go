package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/config"
)

// BatchRecord is everything the background service needs to message one
// customer.
type BatchRecord struct {
	CustomerID uint     `json:"customerId"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Phone2     string   `json:"phone2"`
	Messages   []string `json:"messages"`
	Languages  []string `json:"languages"`
	Area       string   `json:"area"`
}

type SubmitRequest struct {
	UserID       string        `json:"userId"`
	Customers    []BatchRecord `json:"customers"`
	DelaySeconds int           `json:"delay"`
	SessionID    string        `json:"sessionId,omitempty"`
}

type SubmitResponse struct {
	ProcessID string `json:"processId"`
	Estimate  string `json:"estimatedTime"`
}

// BackgroundClient talks to the external background sending service.
type BackgroundClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewBackgroundClient(cfg *config.Config) *BackgroundClient {
	return &BackgroundClient{
		BaseURL: strings.TrimRight(cfg.BackgroundSendURL, "/"),
		Token:   cfg.BackgroundSendToken,
		HTTP:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

func (c *BackgroundClient) do(ctx context.Context, method, url string, body interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return respBody, fmt.Errorf("background service error: %s - %s", resp.Status, string(respBody))
	}
	return respBody, nil
}

// Submit hands one batch to the service and returns its process id.
func (c *BackgroundClient) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, c.BaseURL+"/api/background-sending/start", req)
	if err != nil {
		return nil, err
	}

	var out SubmitResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, fmt.Errorf("decode submit response: %w", err)
	}
	if out.ProcessID == "" {
		return nil, fmt.Errorf("background service returned no process id")
	}
	return &out, nil
}

// Status returns the service's status document for processID unchanged.
func (c *BackgroundClient) Status(ctx context.Context, processID string) (map[string]interface{}, error) {
	resp, err := c.do(ctx, http.MethodGet, c.BaseURL+"/api/background-sending/status/"+url.PathEscape(processID), nil)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return out, nil
}
