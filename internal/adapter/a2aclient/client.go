// Package a2aclient is the outbound side of the agent envelope: it posts
// protocol requests to a peer agent and decodes the result-or-error
// response. Every call is bounded by the client timeout.
package a2aclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/domain/report"
	portreporter "github.com/alanyang/currency-mesh/internal/port/reporter"
	"github.com/alanyang/currency-mesh/internal/protocol"
)

var _ portreporter.Client = (*Client)(nil)

// ErrRemote means the peer answered with a well-formed error envelope.
var ErrRemote = errors.New("a2aclient: remote agent returned an error")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Call posts one envelope and returns the raw result payload.
func (c *Client) Call(ctx context.Context, method protocol.Method, params any) (json.RawMessage, error) {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encoding params: %w", err)
	}

	body, err := json.Marshal(protocol.Request{
		ID:     uuid.NewString(),
		Method: method,
		Params: rawParams,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/a2a", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *protocol.Error `json:"error"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrRemote, envelope.Error.Message)
	}
	if envelope.Result == nil {
		return nil, fmt.Errorf("response carries neither result nor error (status %d)", resp.StatusCode)
	}
	return envelope.Result, nil
}

// GenerateReport delegates report generation to the reporting agent via
// message/send.
func (c *Client) GenerateReport(ctx context.Context, conv conversion.Result, sessionID string) (report.Result, error) {
	raw, err := c.Call(ctx, protocol.MethodSend, protocol.SendParams{
		ConversionResult: conv,
		SessionID:        sessionID,
	})
	if err != nil {
		return report.Result{}, err
	}

	var result protocol.SendResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return report.Result{}, fmt.Errorf("decoding report result: %w", err)
	}
	return result.Result, nil
}

// Card fetches the peer's capability descriptor.
func (c *Client) Card(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/.well-known/agent.json", nil)
	if err != nil {
		return nil, fmt.Errorf("building card request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching agent card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent card returned %d", resp.StatusCode)
	}

	var card map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("decoding agent card: %w", err)
	}
	return card, nil
}
