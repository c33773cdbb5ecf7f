// Package mediastack fetches raw article records from a mediastack-shaped
// news aggregation API.
package mediastack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/daniilsolovey/news-collector/config"
)

// accessKeyName is the conceptual name of the credential, used in the
// ConfigError message.
const accessKeyName = "ACCESS_KEY"

type Client struct {
	httpc *http.Client
	api   config.API
}

type envelope struct {
	Data  []map[string]any `json:"data"`
	Error *apiErrorBody    `json:"error"`
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func New(api config.API, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}

	return &Client{
		httpc: httpc,
		api:   api,
	}
}

// Fetch issues one request against the live news endpoint and returns the
// raw article records in the API's reported order. It does not retry.
//
// The error is one of *ConfigError, *TransportError, *StatusError or
// *APIError; all of them abort the current run.
func (c *Client) Fetch(ctx context.Context) ([]map[string]any, error) {
	if c.api.AccessKey == "" {
		return nil, &ConfigError{Key: accessKeyName}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.newsURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	if body.Error != nil {
		return nil, &APIError{Code: body.Error.Code, Message: body.Error.Message}
	}

	return body.Data, nil
}

func (c *Client) newsURL() string {
	query := url.Values{}
	query.Set("access_key", c.api.AccessKey)
	query.Set("languages", c.api.Languages)
	query.Set("keywords", c.api.Keywords)
	query.Set("sort", c.api.Sort)
	query.Set("limit", strconv.Itoa(c.api.Limit))

	return c.api.BaseURL + "/news?" + query.Encode()
}
