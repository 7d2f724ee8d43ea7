// Package ai is the client for the external generation endpoint that turns a
// freeform text prompt into resume-shaped JSON.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client calls the generation endpoint. One request type: POST {"prompt":
// ...}; expected response {"result": "<json string>"} where result decodes
// to a full or partial resume document. The request is single-shot: a
// failure is reported, never retried.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = os.Getenv("GENERATE_URL")
	}
	if endpoint == "" {
		endpoint = "http://ai-service:8000/api/generate"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{Endpoint: endpoint, HTTP: &http.Client{Timeout: timeout}}
}

type generateReq struct {
	Prompt string `json:"prompt"`
}

type generateResp struct {
	Result string `json:"result"`
}

// Generate sends the prompt and returns the raw JSON document carried in the
// response's result field. The payload is returned undecoded; the caller
// owns validation and merging.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(generateReq{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("generation endpoint returned status %d", resp.StatusCode)
	}

	var out generateResp
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("generation endpoint returned unexpected body: %w", err)
	}

	return []byte(out.Result), nil
}
